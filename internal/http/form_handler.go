package httpx

import (
	"context"
	"net/http"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService defines the Create and Update operations behind a form.
type FormService[T any] interface {
	Create(ctx context.Context, form T) error
	Update(ctx context.Context, id string, form T) error
}

// FormServiceFuncs adapts a pair of functions to FormService.
type FormServiceFuncs[T any] struct {
	CreateFn func(ctx context.Context, form T) error
	UpdateFn func(ctx context.Context, id string, form T) error
}

// Create implements FormService.
func (f FormServiceFuncs[T]) Create(ctx context.Context, form T) error { return f.CreateFn(ctx, form) }

// Update implements FormService.
func (f FormServiceFuncs[T]) Update(ctx context.Context, id string, form T) error {
	return f.UpdateFn(ctx, id, form)
}

// FormRenderer renders the form template with the given data.
type FormRenderer = ErrorRenderer

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Service  FormService[T]
	Renderer FormRenderer
	// SuccessURL is where the browser goes after a successful save.
	SuccessURL string
	PageMeta   PageMeta
	// ExtraData is merged into the template data on error (select options and the like).
	ExtraData map[string]any
	// Fallback is the message shown when a save fails without a backend message.
	Fallback string
	// ForDisplay strips values that must never be echoed back into a re-rendered form.
	ForDisplay func(T) T
}

// HandleForm processes Create and Update workflows: parse, validate, save, then redirect.
// Failures re-render the form with the submitted values.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	var id string
	switch opts.Mode {
	case FormModeCreate:
	case FormModeEdit:
		if id = opts.R.PathValue("id"); id == "" {
			http.NotFound(opts.W, opts.R)
			return
		}
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(nil, fieldErrors, data)
		return
	}

	var err error
	if opts.Mode == FormModeEdit {
		err = opts.Service.Update(opts.R.Context(), id, data)
	} else {
		err = opts.Service.Create(opts.R.Context(), data)
	}
	if err != nil {
		opts.renderFormError(err, nil, data)
		return
	}

	redirect(opts.W, opts.R, opts.SuccessURL)
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(err error, fieldErrors map[string]string, data T) {
	if fh.ForDisplay != nil {
		data = fh.ForDisplay(data)
	}
	extra := map[string]any{
		"Mode":     string(fh.Mode),
		"FormData": data,
	}
	if id := fh.R.PathValue("id"); id != "" {
		extra["ID"] = id
	}
	for k, v := range fh.ExtraData {
		extra[k] = v
	}

	fallback := fh.Fallback
	if fallback == "" {
		fallback = msgSaveFailed
	}

	RenderError(ErrorOpts{
		W:           fh.W,
		R:           fh.R,
		Err:         err,
		FieldErrors: fieldErrors,
		Fallback:    fallback,
		Renderer:    fh.Renderer,
		PageMeta:    fh.PageMeta,
		Data:        extra,
		StatusCode:  DetermineErrorStatus(err),
	})
}
