package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/leave-ui/internal/errors"
)

// mockRenderer captures the data passed to it for testing.
type mockRenderer struct {
	called bool
	data   map[string]any
}

func (m *mockRenderer) render(_ http.ResponseWriter, _ *http.Request, data map[string]any) {
	m.called = true
	m.data = data
}

func TestRenderError_FieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/apply", nil)
	mock := &mockRenderer{}

	RenderError(ErrorOpts{
		W:           w,
		R:           r,
		FieldErrors: map[string]string{"reason": "Reason is required."},
		Renderer:    mock.render,
		PageMeta:    PageMeta{Title: "Apply for Leave", CurrentPage: PageApply},
	})

	require.True(t, mock.called)
	errs, ok := mock.data["Errors"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Reason is required.", errs["reason"])
	assert.Equal(t, true, mock.data["Error"])
	assert.Equal(t, msgFixBelow, mock.data["ErrorMessage"])
	assert.Equal(t, PageApply, mock.data["CurrentPage"])
}

func TestRenderError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message wins",
			err:  fmt.Errorf("create: %w", apperrors.FromStatus(http.StatusBadRequest, "Insufficient balance", false)),
			want: "Insufficient balance",
		},
		{
			name: "plain error uses fallback",
			err:  errors.New("boom"),
			want: msgSubmitFailed,
		},
		{
			name: "timeout",
			err:  fmt.Errorf("wrapped: %w", context.DeadlineExceeded),
			want: "Request timed out. Please try again.",
		},
		{
			name: "canceled",
			err:  context.Canceled,
			want: "Request was canceled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockRenderer{}
			RenderError(ErrorOpts{
				W:        httptest.NewRecorder(),
				R:        httptest.NewRequest(http.MethodPost, "/apply", nil),
				Err:      tt.err,
				Fallback: msgSubmitFailed,
				Renderer: mock.render,
			})
			assert.Equal(t, tt.want, mock.data["ErrorMessage"])
		})
	}
}

func TestRenderError_ValidationFieldFromBackend(t *testing.T) {
	mock := &mockRenderer{}
	RenderError(ErrorOpts{
		W:        httptest.NewRecorder(),
		R:        httptest.NewRequest(http.MethodPost, "/admin/users", nil),
		Err:      apperrors.ValidationField("email", "Email already registered"),
		Renderer: mock.render,
	})

	errs, ok := mock.data["Errors"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Email already registered", errs["email"])
	assert.Equal(t, msgFixBelow, mock.data["ErrorMessage"])
}

func TestRenderError_PreservesDataAndStatus(t *testing.T) {
	w := httptest.NewRecorder()
	mock := &mockRenderer{}
	RenderError(ErrorOpts{
		W:          w,
		R:          httptest.NewRequest(http.MethodPost, "/apply", nil),
		Err:        errors.New("boom"),
		Renderer:   mock.render,
		Data:       map[string]any{"Reason": "family trip"},
		StatusCode: http.StatusUnprocessableEntity,
		ShowToast:  true,
	})

	assert.Equal(t, "family trip", mock.data["Reason"])
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "showToast")
}

func TestRenderError_NilRenderer(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(ErrorOpts{W: w, R: httptest.NewRequest(http.MethodGet, "/", nil)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDetermineErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, DetermineErrorStatus(apperrors.FromStatus(http.StatusForbidden, "", false)))
	assert.Equal(t, http.StatusNotFound, DetermineErrorStatus(apperrors.NotFound("gone")))
	assert.Equal(t, 0, DetermineErrorStatus(errors.New("boom")))
	assert.Equal(t, 0, DetermineErrorStatus(nil))
}

func TestWithStatus_DelaysStatusUntilWrite(t *testing.T) {
	t.Run("headers set before the first write are kept", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := withStatus(rr, http.StatusNotFound)
		w.Header().Set("HX-Trigger", `{"showToast":"gone"}`)
		_, err := w.Write([]byte("<p>gone</p>"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, `{"showToast":"gone"}`, rr.Header().Get("HX-Trigger"))
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	})

	t.Run("an explicit status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := withStatus(rr, http.StatusNotFound)
		w.WriteHeader(http.StatusInternalServerError)
		_, err := w.Write([]byte("boom"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
