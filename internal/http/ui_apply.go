package httpx

import (
	"net/http"
	"strings"

	"github.com/target/leave-ui/internal/domain/leave"
	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/http/validation"
)

const (
	// applyRedirectDelay is how long the success message stays up before /requests loads.
	applyRedirectDelay = "2"
	maxReasonLength    = 500
)

var applyMeta = PageMeta{Title: "Apply for Leave", PageTitle: "Apply for Leave", CurrentPage: PageApply}

// applyForm holds the raw apply-leave submission so it can be redisplayed on error.
type applyForm struct {
	LeaveTypeID string `form:"leave_type_id" validate:"required"         label:"Leave type"`
	StartDate   string `form:"start_date"    validate:"required,date"    label:"Start date"`
	EndDate     string `form:"end_date"      validate:"required,date"    label:"End date"`
	Reason      string `form:"reason"        validate:"required,max=500" label:"Reason"`
}

func parseApplyForm(r *http.Request) applyForm {
	return applyForm{
		LeaveTypeID: strings.TrimSpace(r.PostFormValue("leave_type_id")),
		StartDate:   strings.TrimSpace(r.PostFormValue("start_date")),
		EndDate:     strings.TrimSpace(r.PostFormValue("end_date")),
		Reason:      strings.TrimSpace(r.PostFormValue("reason")),
	}
}

// validate checks the form and returns the parsed dates. Dates are compared against today:
// the start may not be in the past and the end may not precede the start.
func (f applyForm) validate(today model.Date) (model.Date, model.Date, map[string]string) {
	errs := validation.Struct(f)
	if errs == nil {
		errs = map[string]string{}
	}

	start, startErr := model.ParseDate(f.StartDate)
	end, endErr := model.ParseDate(f.EndDate)
	if _, bad := errs["start_date"]; !bad && startErr == nil && start.Before(today) {
		errs["start_date"] = "Start date cannot be in the past."
	}
	if _, bad := errs["end_date"]; !bad && startErr == nil && endErr == nil && end.Before(start) {
		errs["end_date"] = "End date cannot be before the start date."
	}

	if len(errs) == 0 {
		return start, end, nil
	}
	return start, end, errs
}

// previewDays returns the inclusive day count for the raw form dates, or 0 when incomplete.
func previewDays(startRaw, endRaw string) int {
	start, err := model.ParseDate(startRaw)
	if err != nil {
		return 0
	}
	end, err := model.ParseDate(endRaw)
	if err != nil {
		return 0
	}
	return leave.TotalDays(start, end)
}

// applyFormData assembles the data shared by every render of the apply page.
func (h *UIHandlers) applyFormData(r *http.Request, form applyForm) (map[string]any, error) {
	today := h.today()
	endMin := today.String()
	if form.StartDate != "" {
		endMin = form.StartDate
	}
	data := map[string]any{
		"Form":      form,
		"MinStart":  today.String(),
		"MinEnd":    endMin,
		"TotalDays": previewDays(form.StartDate, form.EndDate),
		"MaxReason": maxReasonLength,
	}

	types, err := h.Leave.ListLeaveTypes(r.Context())
	if err != nil {
		data["LeaveTypes"] = []model.LeaveType{}
		return data, err
	}
	data["LeaveTypes"] = model.ActiveLeaveTypes(types)
	return data, nil
}

// ApplyPage renders the leave application form.
// GET /apply.
func (h *UIHandlers) ApplyPage(w http.ResponseWriter, r *http.Request) {
	builder := NewTemplateData(r, applyMeta)
	extra, err := h.applyFormData(r, applyForm{})
	for k, v := range extra {
		builder.With(k, v)
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "load leave types failed", "error", err)
		builder.WithError(apperrors.MessageOr(err, msgLoadLeaveTypes))
	}
	h.renderPage(w, r, builder.Build())
}

// ApplyPreview renders the live total-days preview and the end date input whose minimum
// follows the chosen start date.
// GET /apply/preview?start_date=...&end_date=....
func (h *UIHandlers) ApplyPreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := strings.TrimSpace(q.Get("start_date"))
	end := strings.TrimSpace(q.Get("end_date"))
	endMin := h.today().String()
	if start != "" {
		endMin = start
	}
	h.renderFragment(w, r, "apply-preview", map[string]any{
		"TotalDays": previewDays(start, end),
		"MinEnd":    endMin,
		"Form":      applyForm{StartDate: start, EndDate: end},
	})
}

// ApplySubmit validates the form and creates the leave request.
// POST /apply.
func (h *UIHandlers) ApplySubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := parseApplyForm(r)

	extra, typesErr := h.applyFormData(r, form)
	if typesErr != nil {
		h.logger().WarnContext(r.Context(), "load leave types failed", "error", typesErr)
	}

	start, end, fieldErrs := form.validate(h.today())
	if fieldErrs != nil {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: fieldErrs,
			Renderer:    h.renderPage,
			PageMeta:    applyMeta,
			Data:        extra,
		})
		return
	}

	_, err := h.Leave.CreateLeaveRequest(r.Context(), model.LeaveRequestInput{
		LeaveTypeID: form.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   leave.TotalDays(start, end),
		Reason:      form.Reason,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "submit leave request failed", "error", err)
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Fallback: msgSubmitFailed,
			Renderer: h.renderPage,
			PageMeta: applyMeta,
			Data:     extra,
		})
		return
	}

	data := NewTemplateData(r, applyMeta).
		WithSuccess(msgRequestSubmitted).
		With("RedirectTo", "/requests").
		With("RedirectDelay", applyRedirectDelay).
		With("HXRedirect", IsHTMX(r)).
		Build()
	for k, v := range extra {
		data[k] = v
	}
	// Submitted values are not kept after success.
	data["Form"] = applyForm{}
	data["TotalDays"] = 0

	if !IsHTMX(r) {
		w.Header().Set("Refresh", applyRedirectDelay+"; url=/requests")
	}
	h.renderPage(w, r, data)
}
