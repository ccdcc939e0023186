package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
)

func reviewRequest(path, id, comments string, htmx bool) *http.Request {
	r := requestAs(domainauth.RoleManager, http.MethodPost, path, url.Values{"comments": {comments}})
	r.SetPathValue("id", id)
	if htmx {
		asHTMX(r)
	}
	return r
}

func TestPendingPage(t *testing.T) {
	h, api := newTestUI(t)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return([]model.LeaveRequest{pendingRequest("r1")}, nil)

	rr := httptest.NewRecorder()
	h.PendingPage(rr, requestAs(domainauth.RoleManager, http.MethodGet, "/manager/pending", nil))

	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, ContainsAll(body, []string{"Grace Hopper", "/manager/approve/r1", "/manager/reject/r1", "Family trip"}))
}

func TestHistoryPage(t *testing.T) {
	h, api := newTestUI(t)
	reviewed := pendingRequest("r2")
	reviewed.Status = model.StatusRejected
	comment := "Team offsite that week"
	reviewedAt := testToday.Add(-time.Hour)
	reviewed.ReviewComments = &comment
	reviewed.ReviewedDate = &reviewedAt
	api.EXPECT().ListRequestHistory(gomock.Any()).Return([]model.LeaveRequest{reviewed}, nil)

	rr := httptest.NewRecorder()
	h.HistoryPage(rr, requestAs(domainauth.RoleManager, http.MethodGet, "/manager/history", nil))

	body := rr.Body.String()
	assert.True(t, ContainsAll(body, []string{"Grace Hopper", "Rejected", "Team offsite that week"}))
	assert.NotContains(t, body, "/cancel")
}

func TestApprove(t *testing.T) {
	t.Run("htmx re-renders the queue", func(t *testing.T) {
		h, api := newTestUI(t)
		gomock.InOrder(
			api.EXPECT().ApproveRequest(gomock.Any(), "r1", "Enjoy").Return(nil),
			api.EXPECT().ListPendingRequests(gomock.Any()).Return(nil, nil),
		)

		rr := httptest.NewRecorder()
		h.Approve(rr, reviewRequest("/manager/approve/r1", "r1", " Enjoy ", true))

		assert.Contains(t, rr.Body.String(), "Leave request approved.")
		assert.Contains(t, rr.Header().Get("Hx-Trigger"), "showToast")
	})

	t.Run("comment is optional", func(t *testing.T) {
		h, api := newTestUI(t)
		api.EXPECT().ApproveRequest(gomock.Any(), "r1", "").Return(nil)

		rr := httptest.NewRecorder()
		h.Approve(rr, reviewRequest("/manager/approve/r1", "r1", "", false))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/manager/pending", rr.Header().Get("Location"))
	})

	t.Run("backend failure is shown", func(t *testing.T) {
		h, api := newTestUI(t)
		api.EXPECT().ApproveRequest(gomock.Any(), "r1", "").Return(apperrors.Validation("Request already reviewed"))
		api.EXPECT().ListPendingRequests(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.Approve(rr, reviewRequest("/manager/approve/r1", "r1", "", true))

		assert.Contains(t, rr.Body.String(), "Request already reviewed")
	})
}

func TestReject_RequiresComment(t *testing.T) {
	h, api := newTestUI(t)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return([]model.LeaveRequest{pendingRequest("r1")}, nil)

	rr := httptest.NewRecorder()
	h.Reject(rr, reviewRequest("/manager/reject/r1", "r1", "   ", false))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "A comment is required.")
}

func TestReject_WithComment(t *testing.T) {
	h, api := newTestUI(t)
	api.EXPECT().RejectRequest(gomock.Any(), "r1", "Busy period").Return(nil)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.Reject(rr, reviewRequest("/manager/reject/r1", "r1", "Busy period", true))

	assert.Contains(t, rr.Body.String(), "Leave request rejected.")
}

func TestReject_PlainPostFailureIsShown(t *testing.T) {
	h, api := newTestUI(t)
	api.EXPECT().RejectRequest(gomock.Any(), "r1", "Busy period").
		Return(apperrors.Validation("Request has already been reviewed"))
	api.EXPECT().ListPendingRequests(gomock.Any()).Return([]model.LeaveRequest{pendingRequest("r1")}, nil)

	rr := httptest.NewRecorder()
	h.Reject(rr, reviewRequest("/manager/reject/r1", "r1", "Busy period", false))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Location"))
	assert.Contains(t, rr.Body.String(), "Request has already been reviewed")
}
