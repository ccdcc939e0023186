package httpx

import (
	"net/http"

	apperrors "github.com/target/leave-ui/internal/errors"
)

var requestsMeta = PageMeta{Title: "My Requests", PageTitle: "My Leave Requests", CurrentPage: PageRequests}

// RequestsPage lists the employee's leave requests.
// GET /requests.
func (h *UIHandlers) RequestsPage(w http.ResponseWriter, r *http.Request) {
	h.renderRequests(w, r, NewTemplateData(r, requestsMeta))
}

func (h *UIHandlers) renderRequests(w http.ResponseWriter, r *http.Request, builder *TemplateDataBuilder) {
	requests, err := h.Leave.ListLeaveRequests(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "load leave requests failed", "error", err)
		builder.WithError(apperrors.MessageOr(err, msgLoadRequests))
	}
	builder.With("Requests", requests).
		With("ShowReview", true).
		With("ShowCancel", true)
	h.renderPage(w, r, builder.Build())
}

// CancelRequest withdraws a pending leave request and redisplays the list.
// POST /requests/{id}/cancel.
func (h *UIHandlers) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	builder := NewTemplateData(r, requestsMeta)
	err := h.Leave.DeleteLeaveRequest(r.Context(), id)
	if err != nil {
		h.logger().WarnContext(r.Context(), "cancel leave request failed", "request_id", id, "error", err)
		msg := apperrors.MessageOr(err, msgCancelFailed)
		builder.WithError(msg)
		triggerToast(w, msg, "error")
	} else {
		builder.WithSuccess("Leave request cancelled.")
		triggerToast(w, "Leave request cancelled.", "success")
	}

	if !IsHTMX(r) {
		if err == nil {
			redirect(w, r, "/requests")
			return
		}
		if status := DetermineErrorStatus(err); status != 0 {
			w = withStatus(w, status)
		}
	}
	h.renderRequests(w, r, builder)
}
