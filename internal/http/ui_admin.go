package httpx

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/http/validation"
)

const maxDaysAllowed = 365

var (
	usersMeta      = PageMeta{Title: "Users", PageTitle: "Manage Users", CurrentPage: PageAdminUsers}
	leaveTypesMeta = PageMeta{Title: "Leave Types", PageTitle: "Manage Leave Types", CurrentPage: PageAdminLeaveTypes}
	holidaysMeta   = PageMeta{Title: "Holidays", PageTitle: "Manage Holidays", CurrentPage: PageAdminHolidays}
)

func formMeta(mode FormMode, noun, page string) PageMeta {
	title := "New " + noun
	if mode == FormModeEdit {
		title = "Edit " + noun
	}
	return PageMeta{Title: title, PageTitle: title, CurrentPage: page}
}

func checked(r *http.Request, name string) bool {
	switch strings.ToLower(r.PostFormValue(name)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// listPage renders an admin list page, showing msg as an error when the fetch fails.
func listPage[T any](
	h *UIHandlers,
	w http.ResponseWriter,
	r *http.Request,
	meta PageMeta,
	fetch func(context.Context) ([]T, error),
	fallback string,
) {
	builder := NewTemplateData(r, meta)
	items, err := fetch(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "admin list failed", "page", meta.CurrentPage, "error", err)
		builder.WithError(apperrors.MessageOr(err, fallback))
	}
	builder.With("Items", items)
	h.renderPage(w, r, builder.Build())
}

// deleteHandlerOpts encapsulates common delete-handling behavior for admin endpoints.
type deleteHandlerOpts struct {
	Delete       func(ctx context.Context, id string) error
	RedirectPath string
	Noun         string
}

// handleDelete deletes the item named by the {id} path value and returns to the list.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteHandlerOpts) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	if err := opts.Delete(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "admin delete failed", "noun", opts.Noun, "id", id, "error", err)
		msg := apperrors.MessageOr(err, msgDeleteFailed)
		triggerToast(w, msg, "error")
		if IsHTMX(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, msg, http.StatusBadGateway)
		return
	}

	triggerToast(w, opts.Noun+" deleted.", "success")
	redirect(w, r, opts.RedirectPath)
}

// findByID returns the item whose id matches, since the backend has no single-item reads.
func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	i := slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

// editPage loads the list, finds the item and renders the edit form, or 404s.
func editPage[T any, F any](
	h *UIHandlers,
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context) ([]T, error),
	idOf func(T) string,
	render func(w http.ResponseWriter, r *http.Request, form F, mode FormMode),
	toForm func(T) F,
) {
	id := r.PathValue("id")
	items, err := fetch(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "admin edit load failed", "id", id, "error", err)
		if apperrors.IsForbidden(err) {
			h.Forbidden(w, r)
			return
		}
		h.renderErrorPage(w, r, http.StatusBadGateway, apperrors.MessageOr(err, msgServiceUnavailable))
		return
	}
	item, ok := findByID(items, id, idOf)
	if !ok {
		h.NotFound(w, r)
		return
	}
	render(w, r, toForm(item), FormModeEdit)
}

// ---- users ----

type userForm struct {
	Email      string `form:"email"      validate:"required,email"`
	FirstName  string `form:"first_name" validate:"required,max=100" label:"First name"`
	LastName   string `form:"last_name"  validate:"required,max=100" label:"Last name"`
	Role       string `form:"role"       validate:"required,role"    label:"Role"`
	Department string `form:"department" validate:"max=100"          label:"Department"`
	JoinDate   string `form:"join_date"  validate:"omitempty,date"   label:"Join date"`
	Password   string `form:"password"   validate:"omitempty,min=8"  label:"Password"`
	IsActive   bool   `form:"is_active"`
}

func userFormOf(u model.User) userForm {
	join := ""
	if !u.JoinDate.IsZero() {
		join = u.JoinDate.String()
	}
	return userForm{
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       string(u.Role),
		Department: u.Department,
		JoinDate:   join,
		IsActive:   u.IsActive,
	}
}

func (f userForm) input() model.UserInput {
	role, _ := domainauth.ParseRole(f.Role)
	join, _ := model.ParseDate(f.JoinDate)
	return model.UserInput{
		Email:      f.Email,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Role:       role,
		Department: f.Department,
		JoinDate:   join,
		IsActive:   f.IsActive,
		Password:   f.Password,
	}
}

func userParser(mode FormMode) FormParser[userForm] {
	return func(r *http.Request) (userForm, map[string]string) {
		form := userForm{
			Email:      strings.TrimSpace(r.PostFormValue("email")),
			FirstName:  strings.TrimSpace(r.PostFormValue("first_name")),
			LastName:   strings.TrimSpace(r.PostFormValue("last_name")),
			Role:       strings.TrimSpace(r.PostFormValue("role")),
			Department: strings.TrimSpace(r.PostFormValue("department")),
			JoinDate:   strings.TrimSpace(r.PostFormValue("join_date")),
			Password:   r.PostFormValue("password"),
			IsActive:   checked(r, "is_active"),
		}
		errs := validation.Struct(form)
		if mode == FormModeCreate && form.Password == "" {
			if errs == nil {
				errs = map[string]string{}
			}
			errs["password"] = "Password is required."
		}
		return form, errs
	}
}

func (h *UIHandlers) renderUserForm(w http.ResponseWriter, r *http.Request, form userForm, mode FormMode) {
	data := NewTemplateData(r, formMeta(mode, "User", PageAdminUserForm)).
		With("Mode", string(mode)).
		With("FormData", form).
		With("Roles", domainauth.Roles()).
		With("ID", r.PathValue("id")).
		Build()
	h.renderPage(w, r, data)
}

func (h *UIHandlers) userService() FormService[userForm] {
	return FormServiceFuncs[userForm]{
		CreateFn: func(ctx context.Context, f userForm) error {
			_, err := h.Admin.CreateUser(ctx, f.input())
			return err
		},
		UpdateFn: func(ctx context.Context, id string, f userForm) error {
			_, err := h.Admin.UpdateUser(ctx, id, f.input())
			return err
		},
	}
}

// Users lists all user accounts. GET /admin/users.
func (h *UIHandlers) Users(w http.ResponseWriter, r *http.Request) {
	listPage(h, w, r, usersMeta, h.Admin.ListUsers, msgLoadUsers)
}

// UserNew renders an empty user form. GET /admin/users/new.
func (h *UIHandlers) UserNew(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, userForm{Role: string(domainauth.RoleEmployee), IsActive: true}, FormModeCreate)
}

// UserEdit renders the form for an existing user. GET /admin/users/{id}/edit.
func (h *UIHandlers) UserEdit(w http.ResponseWriter, r *http.Request) {
	editPage(h, w, r, h.Admin.ListUsers, func(u model.User) string { return u.ID }, h.renderUserForm, userFormOf)
}

// UserCreate handles POST /admin/users.
func (h *UIHandlers) UserCreate(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, FormModeCreate)
}

// UserUpdate handles POST /admin/users/{id}.
func (h *UIHandlers) UserUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, FormModeEdit)
}

func (h *UIHandlers) saveUser(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[userForm]{
		W: w, R: r,
		Mode:       mode,
		Parser:     userParser(mode),
		Service:    h.userService(),
		Renderer:   h.renderPage,
		SuccessURL: "/admin/users",
		PageMeta:   formMeta(mode, "User", PageAdminUserForm),
		ExtraData:  map[string]any{"Roles": domainauth.Roles()},
		ForDisplay: withoutPassword,
	})
}

// withoutPassword blanks the password so it is never echoed back into the form.
func withoutPassword(f userForm) userForm {
	f.Password = ""
	return f
}

// UserDelete handles POST /admin/users/{id}/delete.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{Delete: h.Admin.DeleteUser, RedirectPath: "/admin/users", Noun: "User"})
}

// ---- leave types ----

type leaveTypeForm struct {
	Name        string `form:"name"         validate:"required,max=100"`
	DaysAllowed string `form:"days_allowed" validate:"required"         label:"Days allowed"`
	Description string `form:"description"  validate:"max=500"`
	IsActive    bool   `form:"is_active"`
}

func leaveTypeFormOf(lt model.LeaveType) leaveTypeForm {
	return leaveTypeForm{
		Name:        lt.Name,
		DaysAllowed: strconv.Itoa(lt.DaysAllowed),
		Description: lt.Description,
		IsActive:    lt.IsActive,
	}
}

func (f leaveTypeForm) input() model.LeaveTypeInput {
	days, _ := strconv.Atoi(f.DaysAllowed)
	return model.LeaveTypeInput{
		Name:        f.Name,
		DaysAllowed: days,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

func parseLeaveTypeForm(r *http.Request) (leaveTypeForm, map[string]string) {
	form := leaveTypeForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		DaysAllowed: strings.TrimSpace(r.PostFormValue("days_allowed")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		IsActive:    checked(r, "is_active"),
	}
	errs := validation.Struct(form)
	if _, bad := errs["days_allowed"]; !bad {
		if n, err := strconv.Atoi(form.DaysAllowed); err != nil || n < 1 || n > maxDaysAllowed {
			if errs == nil {
				errs = map[string]string{}
			}
			errs["days_allowed"] = "Days allowed must be a whole number between 1 and 365."
		}
	}
	return form, errs
}

func (h *UIHandlers) renderLeaveTypeForm(w http.ResponseWriter, r *http.Request, form leaveTypeForm, mode FormMode) {
	data := NewTemplateData(r, formMeta(mode, "Leave Type", PageAdminLeaveTypeForm)).
		With("Mode", string(mode)).
		With("FormData", form).
		With("ID", r.PathValue("id")).
		Build()
	h.renderPage(w, r, data)
}

func (h *UIHandlers) leaveTypeService() FormService[leaveTypeForm] {
	return FormServiceFuncs[leaveTypeForm]{
		CreateFn: func(ctx context.Context, f leaveTypeForm) error {
			_, err := h.Admin.CreateLeaveType(ctx, f.input())
			return err
		},
		UpdateFn: func(ctx context.Context, id string, f leaveTypeForm) error {
			_, err := h.Admin.UpdateLeaveType(ctx, id, f.input())
			return err
		},
	}
}

// LeaveTypes lists leave types. GET /admin/leave-types.
func (h *UIHandlers) LeaveTypes(w http.ResponseWriter, r *http.Request) {
	listPage(h, w, r, leaveTypesMeta, h.Admin.ListLeaveTypes, msgLoadLeaveTypes)
}

// LeaveTypeNew renders an empty leave type form. GET /admin/leave-types/new.
func (h *UIHandlers) LeaveTypeNew(w http.ResponseWriter, r *http.Request) {
	h.renderLeaveTypeForm(w, r, leaveTypeForm{IsActive: true}, FormModeCreate)
}

// LeaveTypeEdit renders the form for an existing leave type. GET /admin/leave-types/{id}/edit.
func (h *UIHandlers) LeaveTypeEdit(w http.ResponseWriter, r *http.Request) {
	editPage(h, w, r, h.Admin.ListLeaveTypes,
		func(lt model.LeaveType) string { return lt.ID }, h.renderLeaveTypeForm, leaveTypeFormOf)
}

// LeaveTypeCreate handles POST /admin/leave-types.
func (h *UIHandlers) LeaveTypeCreate(w http.ResponseWriter, r *http.Request) {
	h.saveLeaveType(w, r, FormModeCreate)
}

// LeaveTypeUpdate handles POST /admin/leave-types/{id}.
func (h *UIHandlers) LeaveTypeUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveLeaveType(w, r, FormModeEdit)
}

func (h *UIHandlers) saveLeaveType(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[leaveTypeForm]{
		W: w, R: r,
		Mode:       mode,
		Parser:     parseLeaveTypeForm,
		Service:    h.leaveTypeService(),
		Renderer:   h.renderPage,
		SuccessURL: "/admin/leave-types",
		PageMeta:   formMeta(mode, "Leave Type", PageAdminLeaveTypeForm),
	})
}

// LeaveTypeDelete handles POST /admin/leave-types/{id}/delete.
func (h *UIHandlers) LeaveTypeDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Admin.DeleteLeaveType,
		RedirectPath: "/admin/leave-types",
		Noun:         "Leave type",
	})
}

// ---- holidays ----

type holidayForm struct {
	Name        string `form:"name"        validate:"required,max=100"`
	Date        string `form:"date"        validate:"required,date"`
	Description string `form:"description" validate:"max=500"`
	IsActive    bool   `form:"is_active"`
}

func holidayFormOf(hol model.Holiday) holidayForm {
	return holidayForm{
		Name:        hol.Name,
		Date:        hol.Date.String(),
		Description: hol.Description,
		IsActive:    hol.IsActive,
	}
}

func (f holidayForm) input() model.HolidayInput {
	date, _ := model.ParseDate(f.Date)
	return model.HolidayInput{
		Name:        f.Name,
		Date:        date,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

func parseHolidayForm(r *http.Request) (holidayForm, map[string]string) {
	form := holidayForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		IsActive:    checked(r, "is_active"),
	}
	return form, validation.Struct(form)
}

func (h *UIHandlers) renderHolidayForm(w http.ResponseWriter, r *http.Request, form holidayForm, mode FormMode) {
	data := NewTemplateData(r, formMeta(mode, "Holiday", PageAdminHolidayForm)).
		With("Mode", string(mode)).
		With("FormData", form).
		With("ID", r.PathValue("id")).
		Build()
	h.renderPage(w, r, data)
}

func (h *UIHandlers) holidayService() FormService[holidayForm] {
	return FormServiceFuncs[holidayForm]{
		CreateFn: func(ctx context.Context, f holidayForm) error {
			_, err := h.Admin.CreateHoliday(ctx, f.input())
			return err
		},
		UpdateFn: func(ctx context.Context, id string, f holidayForm) error {
			_, err := h.Admin.UpdateHoliday(ctx, id, f.input())
			return err
		},
	}
}

// Holidays lists company holidays. GET /admin/holidays.
func (h *UIHandlers) Holidays(w http.ResponseWriter, r *http.Request) {
	listPage(h, w, r, holidaysMeta, h.Admin.ListHolidays, msgLoadHolidays)
}

// HolidayNew renders an empty holiday form. GET /admin/holidays/new.
func (h *UIHandlers) HolidayNew(w http.ResponseWriter, r *http.Request) {
	h.renderHolidayForm(w, r, holidayForm{IsActive: true}, FormModeCreate)
}

// HolidayEdit renders the form for an existing holiday. GET /admin/holidays/{id}/edit.
func (h *UIHandlers) HolidayEdit(w http.ResponseWriter, r *http.Request) {
	editPage(h, w, r, h.Admin.ListHolidays,
		func(hol model.Holiday) string { return hol.ID }, h.renderHolidayForm, holidayFormOf)
}

// HolidayCreate handles POST /admin/holidays.
func (h *UIHandlers) HolidayCreate(w http.ResponseWriter, r *http.Request) {
	h.saveHoliday(w, r, FormModeCreate)
}

// HolidayUpdate handles POST /admin/holidays/{id}.
func (h *UIHandlers) HolidayUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveHoliday(w, r, FormModeEdit)
}

func (h *UIHandlers) saveHoliday(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[holidayForm]{
		W: w, R: r,
		Mode:       mode,
		Parser:     parseHolidayForm,
		Service:    h.holidayService(),
		Renderer:   h.renderPage,
		SuccessURL: "/admin/holidays",
		PageMeta:   formMeta(mode, "Holiday", PageAdminHolidayForm),
	})
}

// HolidayDelete handles POST /admin/holidays/{id}/delete.
func (h *UIHandlers) HolidayDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{Delete: h.Admin.DeleteHoliday, RedirectPath: "/admin/holidays", Noun: "Holiday"})
}
