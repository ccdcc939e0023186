//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
)

// RequestStatus is the lifecycle state of a leave request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Valid reports whether the status is one the backend is known to emit.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// User is an employee account as returned by the backend.
type User struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       domainauth.Role `json:"role"`
	Department string          `json:"department"`
	JoinDate   Date            `json:"joinDate"`
	IsActive   bool            `json:"isActive"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// LeaveType is a category of leave with its yearly allowance.
type LeaveType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DaysAllowed int    `json:"daysAllowed"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// LeaveRequest is a single application for leave.
// TotalDays is inclusive of both endpoints and at least 1 for any stored request.
type LeaveRequest struct {
	ID             string        `json:"id"`
	EmployeeID     string        `json:"employeeId"`
	EmployeeName   string        `json:"employeeName"`
	LeaveTypeID    string        `json:"leaveTypeId"`
	LeaveTypeName  string        `json:"leaveTypeName"`
	StartDate      Date          `json:"startDate"`
	EndDate        Date          `json:"endDate"`
	TotalDays      int           `json:"totalDays"`
	Reason         string        `json:"reason"`
	Status         RequestStatus `json:"status"`
	AppliedDate    time.Time     `json:"appliedDate"`
	ReviewedBy     *string       `json:"reviewedBy,omitempty"`
	ReviewedDate   *time.Time    `json:"reviewedDate,omitempty"`
	ReviewComments *string       `json:"reviewComments,omitempty"`
}

// IsPending reports whether the request still awaits review.
func (r LeaveRequest) IsPending() bool { return r.Status == StatusPending }

// LeaveBalance is the per-type entitlement for the current user.
// RemainingDays is computed by the backend and is never recomputed here.
type LeaveBalance struct {
	LeaveTypeID   string `json:"leaveTypeId"`
	LeaveTypeName string `json:"leaveTypeName"`
	TotalDays     int    `json:"totalDays"`
	UsedDays      int    `json:"usedDays"`
	RemainingDays int    `json:"remainingDays"`
}

// Holiday is a company-wide non-working day.
type Holiday struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// LeaveRequestInput is the payload for creating or updating a leave request.
type LeaveRequestInput struct {
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	TotalDays   int    `json:"totalDays"`
	Reason      string `json:"reason"`
}

// UserInput is the payload for creating or updating a user. Password is only sent on create.
type UserInput struct {
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       domainauth.Role `json:"role"`
	Department string          `json:"department"`
	JoinDate   Date            `json:"joinDate"`
	IsActive   bool            `json:"isActive"`
	Password   string          `json:"password,omitempty"`
}

// LeaveTypeInput is the payload for creating or updating a leave type.
type LeaveTypeInput struct {
	Name        string `json:"name"`
	DaysAllowed int    `json:"daysAllowed"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// HolidayInput is the payload for creating or updating a holiday.
type HolidayInput struct {
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// ReviewInput carries the reviewer's comment for approve/reject.
type ReviewInput struct {
	Comments string `json:"comments,omitempty"`
}

// ActiveLeaveTypes returns the leave types with IsActive set, preserving order.
func ActiveLeaveTypes(types []LeaveType) []LeaveType {
	out := make([]LeaveType, 0, len(types))
	for _, lt := range types {
		if lt.IsActive {
			out = append(out, lt)
		}
	}
	return out
}
