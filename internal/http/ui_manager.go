package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/http/validation"
)

var (
	pendingMeta = PageMeta{Title: "Pending Approvals", PageTitle: "Pending Approvals", CurrentPage: PageManagerPending}
	historyMeta = PageMeta{Title: "Request History", PageTitle: "Request History", CurrentPage: PageManagerHistory}
)

type approveForm struct {
	Comments string `form:"comments" validate:"max=500" label:"A comment"`
}

type rejectForm struct {
	Comments string `form:"comments" validate:"required,max=500" label:"A comment"`
}

// PendingPage lists requests awaiting the manager's decision.
// GET /manager/pending.
func (h *UIHandlers) PendingPage(w http.ResponseWriter, r *http.Request) {
	h.renderPending(w, r, NewTemplateData(r, pendingMeta))
}

func (h *UIHandlers) renderPending(w http.ResponseWriter, r *http.Request, builder *TemplateDataBuilder) {
	pending, err := h.Approvals.ListPendingRequests(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "load pending requests failed", "error", err)
		builder.WithError(apperrors.MessageOr(err, msgLoadRequests))
	}
	if _, ok := builder.data["ReviewID"]; !ok {
		builder.With("ReviewID", "")
	}
	builder.With("Requests", pending)
	h.renderPage(w, r, builder.Build())
}

// HistoryPage lists requests the manager has already reviewed.
// GET /manager/history.
func (h *UIHandlers) HistoryPage(w http.ResponseWriter, r *http.Request) {
	builder := NewTemplateData(r, historyMeta)
	history, err := h.Approvals.ListRequestHistory(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "load request history failed", "error", err)
		builder.WithError(apperrors.MessageOr(err, msgLoadRequests))
	}
	builder.With("Requests", history).
		With("ShowEmployee", true).
		With("ShowReview", true)
	h.renderPage(w, r, builder.Build())
}

// Approve approves a pending request with an optional comment.
// POST /manager/approve/{id}.
func (h *UIHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	form := approveForm{Comments: strings.TrimSpace(r.PostFormValue("comments"))}
	h.review(w, r, reviewAction{
		status: model.StatusApproved,
		errs:   validation.Struct(form),
		call:   h.Approvals.ApproveRequest,
		input:  model.ReviewInput{Comments: form.Comments},
	})
}

// Reject rejects a pending request. A comment explaining the decision is required.
// POST /manager/reject/{id}.
func (h *UIHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	form := rejectForm{Comments: strings.TrimSpace(r.PostFormValue("comments"))}
	h.review(w, r, reviewAction{
		status: model.StatusRejected,
		errs:   validation.Struct(form),
		call:   h.Approvals.RejectRequest,
		input:  model.ReviewInput{Comments: form.Comments},
	})
}

type reviewAction struct {
	status model.RequestStatus
	errs   map[string]string
	call   func(ctx context.Context, id, comments string) error
	input  model.ReviewInput
}

// review runs an approve or reject decision and redisplays the pending queue.
// Validation failures keep the request in the queue with the error shown against it.
func (h *UIHandlers) review(w http.ResponseWriter, r *http.Request, action reviewAction) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	builder := NewTemplateData(r, pendingMeta)
	var callErr error
	switch {
	case action.errs != nil:
		builder.WithFieldErrors(action.errs).
			WithError(action.errs["comments"]).
			With("ReviewID", id).
			With("Comments", action.input.Comments)
	default:
		if callErr = action.call(r.Context(), id, action.input.Comments); callErr != nil {
			h.logger().WarnContext(r.Context(), "review leave request failed",
				"request_id", id,
				"decision", action.status,
				"error", callErr,
			)
			msg := apperrors.MessageOr(callErr, msgReviewFailed)
			builder.WithError(msg)
			triggerToast(w, msg, "error")
		} else {
			msg := "Leave request " + string(action.status) + "."
			builder.WithSuccess(msg)
			triggerToast(w, msg, "success")
		}
	}

	if IsHTMX(r) {
		h.renderPending(w, r, builder)
		return
	}
	// Plain posts only redirect on success; a failure has to be shown on the page itself.
	if action.errs == nil && callErr == nil {
		redirect(w, r, "/manager/pending")
		return
	}
	if status := DetermineErrorStatus(callErr); status != 0 {
		w = withStatus(w, status)
	}
	h.renderPending(w, r, builder)
}
