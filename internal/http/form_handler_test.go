package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/leave-ui/internal/errors"
)

type testFormData struct {
	Name string
}

func staticParser(data testFormData, errs map[string]string) FormParser[testFormData] {
	return func(*http.Request) (testFormData, map[string]string) {
		return data, errs
	}
}

type renderCapture struct {
	data map[string]any
}

func (c *renderCapture) render(w http.ResponseWriter, _ *http.Request, data map[string]any) {
	c.data = data
	_, _ = w.Write([]byte("form rendered"))
}

func TestHandleForm_CreateSuccess(t *testing.T) {
	t.Parallel()

	var created testFormData
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/holidays", nil)
	capture := &renderCapture{}

	HandleForm(FormHandlerOpts[testFormData]{
		W: w, R: r,
		Mode:   FormModeCreate,
		Parser: staticParser(testFormData{Name: "New Year"}, nil),
		Service: FormServiceFuncs[testFormData]{
			CreateFn: func(_ context.Context, f testFormData) error {
				created = f
				return nil
			},
		},
		Renderer:   capture.render,
		SuccessURL: "/admin/holidays",
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/holidays", w.Header().Get("Location"))
	assert.Equal(t, "New Year", created.Name)
	assert.Nil(t, capture.data)
}

func TestHandleForm_EditUsesPathID(t *testing.T) {
	t.Parallel()

	var gotID string
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/holidays/h1", nil)
	r.SetPathValue("id", "h1")
	r.Header.Set("Hx-Request", "true")

	HandleForm(FormHandlerOpts[testFormData]{
		W: w, R: r,
		Mode:   FormModeEdit,
		Parser: staticParser(testFormData{Name: "Boxing Day"}, nil),
		Service: FormServiceFuncs[testFormData]{
			UpdateFn: func(_ context.Context, id string, _ testFormData) error {
				gotID = id
				return nil
			},
		},
		Renderer:   (&renderCapture{}).render,
		SuccessURL: "/admin/holidays",
	})

	assert.Equal(t, "h1", gotID)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/admin/holidays", w.Header().Get("Hx-Redirect"))
}

func TestHandleForm_EditWithoutID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleForm(FormHandlerOpts[testFormData]{
		W:        w,
		R:        httptest.NewRequest(http.MethodPost, "/admin/holidays/", nil),
		Mode:     FormModeEdit,
		Parser:   staticParser(testFormData{}, nil),
		Service:  FormServiceFuncs[testFormData]{},
		Renderer: (&renderCapture{}).render,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleForm_ValidationErrorsSkipService(t *testing.T) {
	t.Parallel()

	called := false
	capture := &renderCapture{}
	HandleForm(FormHandlerOpts[testFormData]{
		W:      httptest.NewRecorder(),
		R:      httptest.NewRequest(http.MethodPost, "/admin/holidays", nil),
		Mode:   FormModeCreate,
		Parser: staticParser(testFormData{}, map[string]string{"name": "Name is required."}),
		Service: FormServiceFuncs[testFormData]{
			CreateFn: func(context.Context, testFormData) error {
				called = true
				return nil
			},
		},
		Renderer:  capture.render,
		ExtraData: map[string]any{"Roles": []string{"employee"}},
	})

	assert.False(t, called)
	require.NotNil(t, capture.data)
	assert.Equal(t, map[string]string{"name": "Name is required."}, capture.data["Errors"])
	assert.Equal(t, msgFixBelow, capture.data["ErrorMessage"])
	assert.Equal(t, "create", capture.data["Mode"])
	assert.Equal(t, []string{"employee"}, capture.data["Roles"])
}

func TestHandleForm_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "backend message",
			err:        apperrors.FromStatus(http.StatusConflict, "Holiday already exists", false),
			wantMsg:    "Holiday already exists",
			wantStatus: http.StatusOK,
		},
		{
			name:       "generic failure",
			err:        errors.New("boom"),
			wantMsg:    msgSaveFailed,
			wantStatus: http.StatusOK,
		},
		{
			name:       "forbidden",
			err:        apperrors.FromStatus(http.StatusForbidden, "", false),
			wantMsg:    "You do not have permission to perform this action.",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			capture := &renderCapture{}
			HandleForm(FormHandlerOpts[testFormData]{
				W:      w,
				R:      httptest.NewRequest(http.MethodPost, "/admin/holidays", nil),
				Mode:   FormModeCreate,
				Parser: staticParser(testFormData{Name: "Kept"}, nil),
				Service: FormServiceFuncs[testFormData]{
					CreateFn: func(context.Context, testFormData) error { return tt.err },
				},
				Renderer: capture.render,
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, capture.data["ErrorMessage"])
			assert.Equal(t, testFormData{Name: "Kept"}, capture.data["FormData"])
		})
	}
}

func TestHandleForm_ForDisplayOnlyAffectsRerender(t *testing.T) {
	t.Parallel()

	var saved testFormData
	capture := &renderCapture{}
	HandleForm(FormHandlerOpts[testFormData]{
		W:      httptest.NewRecorder(),
		R:      httptest.NewRequest(http.MethodPost, "/admin/users", nil),
		Mode:   FormModeCreate,
		Parser: staticParser(testFormData{Name: "hunter2"}, nil),
		Service: FormServiceFuncs[testFormData]{
			CreateFn: func(_ context.Context, f testFormData) error {
				saved = f
				return errors.New("boom")
			},
		},
		Renderer:   capture.render,
		ForDisplay: func(testFormData) testFormData { return testFormData{} },
	})

	assert.Equal(t, testFormData{Name: "hunter2"}, saved, "the service sees the submitted values")
	assert.Equal(t, testFormData{}, capture.data["FormData"], "the re-render sees the display copy")
}
