package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"
)

// Role represents an application's authorization role.
// The set is closed: every switch over Role handles all three values.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Roles returns every supported role in display order.
func Roles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleAdmin}
}

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the role.
func (r Role) Label() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Administrator"
	default:
		return string(r)
	}
}

// ParseRole normalizes value and rejects anything outside the closed role set.
func ParseRole(value string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return r, nil
}

// Session is the server-side record we persist for an authenticated user.
// ID is the opaque identifier carried in the browser cookie; Token is the
// backend bearer token and never leaves the server.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
	// ResolvedAt records when the identity snapshot was last confirmed with the backend.
	ResolvedAt time.Time `json:"resolved_at"`
}

// FullName returns "First Last", falling back to the email when both are empty.
func (s Session) FullName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return s.Email
	}
	return name
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
