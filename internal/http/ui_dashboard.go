package httpx

import (
	"net/http"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
)

var dashboardMeta = PageMeta{Title: "Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard}

// Dashboard renders the signed-in user's role dashboard.
// GET /.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	builder := NewTemplateData(r, dashboardMeta).
		With("FirstName", session.FirstName).
		With("Role", string(session.Role))

	var err error
	switch session.Role {
	case domainauth.RoleEmployee:
		d, loadErr := h.Dashboards.Employee(r.Context())
		builder.With("Employee", d)
		err = loadErr
	case domainauth.RoleManager:
		d, loadErr := h.Dashboards.Manager(r.Context())
		builder.With("Manager", d)
		err = loadErr
	case domainauth.RoleAdmin:
		d, loadErr := h.Dashboards.Admin(r.Context())
		builder.With("Admin", d)
		err = loadErr
	default:
		h.logger().ErrorContext(r.Context(), "session with unknown role", "role", session.Role)
		redirectToLogin(w, r)
		return
	}

	if err != nil {
		h.logger().WarnContext(r.Context(), "dashboard data unavailable",
			"role", session.Role,
			"error", err,
		)
		builder.With("Notice", msgLoadDashboard)
	}

	h.renderPage(w, r, builder.Build())
}
