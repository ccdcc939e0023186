package backend

import (
	"context"
	"net/http"

	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
)

// resource bundles the list/create/update/delete calls of one admin collection.
type resource[T, In any] struct {
	c    *Client
	name string
	path string
}

func (r resource[T, In]) list(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, call{op: "list_" + r.name, method: http.MethodGet, path: r.path, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[T, In]) create(ctx context.Context, in In) (*T, error) {
	var out T
	if err := r.c.do(ctx, call{op: "create_" + r.name, method: http.MethodPost, path: r.path, body: in, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, In]) update(ctx context.Context, id string, in In) (*T, error) {
	escaped, err := escapeID(id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "A record id is required.")
	}
	var out T
	err = r.c.do(ctx, call{op: "update_" + r.name, method: http.MethodPut, path: r.path + "/" + escaped, body: in, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, In]) delete(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "A record id is required.")
	}
	return r.c.do(ctx, call{op: "delete_" + r.name, method: http.MethodDelete, path: r.path + "/" + escaped})
}

func (c *Client) users() resource[model.User, model.UserInput] {
	return resource[model.User, model.UserInput]{c: c, name: "user", path: "/admin/users"}
}

func (c *Client) leaveTypes() resource[model.LeaveType, model.LeaveTypeInput] {
	return resource[model.LeaveType, model.LeaveTypeInput]{c: c, name: "leave_type", path: "/admin/leave-types"}
}

func (c *Client) holidays() resource[model.Holiday, model.HolidayInput] {
	return resource[model.Holiday, model.HolidayInput]{c: c, name: "holiday", path: "/admin/holidays"}
}

// ListUsers returns every user account.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) { return c.users().list(ctx) }

// CreateUser creates a user account.
func (c *Client) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	return c.users().create(ctx, in)
}

// UpdateUser replaces the editable fields of a user account.
func (c *Client) UpdateUser(ctx context.Context, id string, in model.UserInput) (*model.User, error) {
	return c.users().update(ctx, id, in)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error { return c.users().delete(ctx, id) }

// ListLeaveTypes returns every leave type, active or not.
func (c *Client) ListLeaveTypes(ctx context.Context) ([]model.LeaveType, error) {
	return c.leaveTypes().list(ctx)
}

// CreateLeaveType creates a leave type.
func (c *Client) CreateLeaveType(ctx context.Context, in model.LeaveTypeInput) (*model.LeaveType, error) {
	return c.leaveTypes().create(ctx, in)
}

// UpdateLeaveType replaces the editable fields of a leave type.
func (c *Client) UpdateLeaveType(ctx context.Context, id string, in model.LeaveTypeInput) (*model.LeaveType, error) {
	return c.leaveTypes().update(ctx, id, in)
}

// DeleteLeaveType removes a leave type.
func (c *Client) DeleteLeaveType(ctx context.Context, id string) error {
	return c.leaveTypes().delete(ctx, id)
}

// ListHolidays returns every holiday.
func (c *Client) ListHolidays(ctx context.Context) ([]model.Holiday, error) {
	return c.holidays().list(ctx)
}

// CreateHoliday creates a holiday.
func (c *Client) CreateHoliday(ctx context.Context, in model.HolidayInput) (*model.Holiday, error) {
	return c.holidays().create(ctx, in)
}

// UpdateHoliday replaces the editable fields of a holiday.
func (c *Client) UpdateHoliday(ctx context.Context, id string, in model.HolidayInput) (*model.Holiday, error) {
	return c.holidays().update(ctx, id, in)
}

// DeleteHoliday removes a holiday.
func (c *Client) DeleteHoliday(ctx context.Context, id string) error {
	return c.holidays().delete(ctx, id)
}
