package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/target/leave-ui/internal/backend"
	"github.com/target/leave-ui/internal/domain/model"
	"github.com/target/leave-ui/internal/http/ui/viewmodel"
	"github.com/target/leave-ui/internal/service"
)

// LeaveService is the employee-facing subset of the backend used by the UI.
type LeaveService interface {
	ListLeaveTypes(ctx context.Context) ([]model.LeaveType, error)
	ListLeaveBalances(ctx context.Context) ([]model.LeaveBalance, error)
	ListLeaveRequests(ctx context.Context) ([]model.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, in model.LeaveRequestInput) (*model.LeaveRequest, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
}

// ApprovalService is the manager-facing subset of the backend used by the UI.
type ApprovalService interface {
	ListPendingRequests(ctx context.Context) ([]model.LeaveRequest, error)
	ListRequestHistory(ctx context.Context) ([]model.LeaveRequest, error)
	ApproveRequest(ctx context.Context, id, comments string) error
	RejectRequest(ctx context.Context, id, comments string) error
}

// AdminService is the administrator-facing subset of the backend used by the UI.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id string, in model.UserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListLeaveTypes(ctx context.Context) ([]model.LeaveType, error)
	CreateLeaveType(ctx context.Context, in model.LeaveTypeInput) (*model.LeaveType, error)
	UpdateLeaveType(ctx context.Context, id string, in model.LeaveTypeInput) (*model.LeaveType, error)
	DeleteLeaveType(ctx context.Context, id string) error

	ListHolidays(ctx context.Context) ([]model.Holiday, error)
	CreateHoliday(ctx context.Context, in model.HolidayInput) (*model.Holiday, error)
	UpdateHoliday(ctx context.Context, id string, in model.HolidayInput) (*model.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}

// DashboardLoader loads the data behind each role's dashboard.
type DashboardLoader interface {
	Employee(ctx context.Context) (service.EmployeeDashboard, error)
	Manager(ctx context.Context) (service.ManagerDashboard, error)
	Admin(ctx context.Context) (service.AdminDashboard, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ LeaveService    = (*backend.Client)(nil)
	_ ApprovalService = (*backend.Client)(nil)
	_ AdminService    = (*backend.Client)(nil)
	_ DashboardLoader = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	Leave      LeaveService
	Approvals  ApprovalService
	Admin      AdminService
	Dashboards DashboardLoader
	// Location is the zone "today" is computed in. Defaults to UTC.
	Location *time.Location
	Now      func() time.Time
	IsDev    bool // Development mode flag for enhanced error reporting
	Logger   *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// today is the current calendar date in the configured location.
func (h *UIHandlers) today() model.Date {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	return model.DateOf(now().In(loc))
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{
			Name:       session.FullName(),
			Email:      session.Email,
			Role:       session.Role,
			RoleLabel:  session.Role.Label(),
			Department: session.Department,
		}
		layout.Nav = viewmodel.NavFor(session.Role)
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"Nav":             layout.Nav,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// renderPage renders a page with proper htmx partial support.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For htmx requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	title, _ := data["Title"].(string)
	pageTitle, _ := data["PageTitle"].(string)
	currentPage, _ := data["CurrentPage"].(string)

	// Include a <title> element so htmx updates document.title on partial swaps
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(pageTitle) + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(currentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderFragment renders a named fragment with no layout, for targeted htmx swaps.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.RenderTemplate(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment render: "+name)
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, writeErr := w.Write([]byte(`<div class="alert alert-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
