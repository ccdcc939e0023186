package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/target/leave-ui/internal/errors"
)

// ErrorRenderer renders a page with the prepared error data, typically h.renderPage.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (form field name → message)
	FieldErrors map[string]string
	// Fallback is shown when Err carries no user-facing message.
	Fallback string
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data carries form values and select options so the page re-renders intact.
	Data map[string]any
	// StatusCode is the HTTP status code to set (optional, defaults to 200 for htmx swaps)
	StatusCode int
	// ShowToast triggers a toast notification with the error message (optional)
	ShowToast bool
}

// DetermineErrorStatus returns a status for errors that must not be swapped in as 200.
// A status of 0 means the caller should use the default behavior.
func DetermineErrorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return 0
	}
}

// RenderError renders the page again with a general message and any field-level errors.
// Backend validation errors naming a field are attached to that field.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)

	generalError := processError(opts.Err, opts.Fallback, &opts.FieldErrors)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}

	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		builder.WithError(msgFixBelow)
	}

	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}

	w := opts.W
	if opts.StatusCode != 0 {
		w = withStatus(w, opts.StatusCode)
	}
	opts.Renderer(w, opts.R, builder.Build())
}

// statusWriter holds back the status line until the body is first written, so headers the
// renderer sets (Content-Type, HX-Trigger) still go out with a non-200 status.
type statusWriter struct {
	http.ResponseWriter
	status int
	sent   bool
}

func withStatus(w http.ResponseWriter, status int) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: status}
}

// WriteHeader passes through the first explicit status, e.g. a 500 from a failed render.
func (s *statusWriter) WriteHeader(code int) {
	if s.sent {
		return
	}
	s.sent = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Write(b []byte) (int, error) {
	if !s.sent {
		if s.Header().Get("Content-Type") == "" {
			s.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		s.WriteHeader(s.status)
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusWriter) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// processError returns the user-facing message for err. Returns "" if err is nil.
func processError(err error, fallback string, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = "An error occurred. Please try again."
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	if field := apperrors.GetField(err); field != "" && apperrors.IsValidation(err) && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[field] = apperrors.MessageOr(err, "This field has an invalid value.")
		return msgFixBelow
	}

	return apperrors.MessageOr(err, fallback)
}
