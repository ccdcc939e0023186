package backend

import (
	"context"
	"net/http"

	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
)

// ListPendingRequests returns requests awaiting the manager's review.
func (c *Client) ListPendingRequests(ctx context.Context) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	if err := c.do(ctx, call{op: "list_pending", method: http.MethodGet, path: "/manager/pending", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRequestHistory returns requests the manager has already reviewed.
func (c *Client) ListRequestHistory(ctx context.Context) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	if err := c.do(ctx, call{op: "list_history", method: http.MethodGet, path: "/manager/history", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveRequest approves a pending request with an optional comment.
func (c *Client) ApproveRequest(ctx context.Context, id, comments string) error {
	return c.review(ctx, "approve", id, comments)
}

// RejectRequest rejects a pending request. The backend expects a comment.
func (c *Client) RejectRequest(ctx context.Context, id, comments string) error {
	return c.review(ctx, "reject", id, comments)
}

func (c *Client) review(ctx context.Context, action, id, comments string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "A request id is required.")
	}
	return c.do(ctx, call{
		op:     action + "_request",
		method: http.MethodPost,
		path:   "/manager/" + action + "/" + escaped,
		body:   model.ReviewInput{Comments: comments},
	})
}
