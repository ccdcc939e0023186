package backend

import (
	"context"

	"github.com/target/leave-ui/internal/domain/model"
)

// API is the full set of backend operations. Consumers declare the subset they need;
// this interface exists for mocks and compile-time conformance.
type API interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context) (*model.User, error)

	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id string, in model.UserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListLeaveTypes(ctx context.Context) ([]model.LeaveType, error)
	CreateLeaveType(ctx context.Context, in model.LeaveTypeInput) (*model.LeaveType, error)
	UpdateLeaveType(ctx context.Context, id string, in model.LeaveTypeInput) (*model.LeaveType, error)
	DeleteLeaveType(ctx context.Context, id string) error

	ListHolidays(ctx context.Context) ([]model.Holiday, error)
	CreateHoliday(ctx context.Context, in model.HolidayInput) (*model.Holiday, error)
	UpdateHoliday(ctx context.Context, id string, in model.HolidayInput) (*model.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error

	ListLeaveRequests(ctx context.Context) ([]model.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, in model.LeaveRequestInput) (*model.LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, id string, in model.LeaveRequestInput) (*model.LeaveRequest, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
	ListLeaveBalances(ctx context.Context) ([]model.LeaveBalance, error)

	ListPendingRequests(ctx context.Context) ([]model.LeaveRequest, error)
	ListRequestHistory(ctx context.Context) ([]model.LeaveRequest, error)
	ApproveRequest(ctx context.Context, id, comments string) error
	RejectRequest(ctx context.Context, id, comments string) error
}

var _ API = (*Client)(nil)
