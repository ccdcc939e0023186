package backend

import (
	"context"
	"net/http"

	"github.com/target/leave-ui/internal/domain/model"
)

func (c *Client) requests() resource[model.LeaveRequest, model.LeaveRequestInput] {
	return resource[model.LeaveRequest, model.LeaveRequestInput]{c: c, name: "leave_request", path: "/employee/requests"}
}

// ListLeaveRequests returns the current user's leave requests, newest first as ordered by the backend.
func (c *Client) ListLeaveRequests(ctx context.Context) ([]model.LeaveRequest, error) {
	return c.requests().list(ctx)
}

// CreateLeaveRequest submits a new leave request.
func (c *Client) CreateLeaveRequest(ctx context.Context, in model.LeaveRequestInput) (*model.LeaveRequest, error) {
	return c.requests().create(ctx, in)
}

// UpdateLeaveRequest edits a pending leave request.
func (c *Client) UpdateLeaveRequest(ctx context.Context, id string, in model.LeaveRequestInput) (*model.LeaveRequest, error) {
	return c.requests().update(ctx, id, in)
}

// DeleteLeaveRequest withdraws a leave request.
func (c *Client) DeleteLeaveRequest(ctx context.Context, id string) error {
	return c.requests().delete(ctx, id)
}

// ListLeaveBalances returns the current user's balance per leave type.
func (c *Client) ListLeaveBalances(ctx context.Context) ([]model.LeaveBalance, error) {
	var out []model.LeaveBalance
	if err := c.do(ctx, call{op: "list_balances", method: http.MethodGet, path: "/employee/balance", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}
