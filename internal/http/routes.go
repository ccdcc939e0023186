package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	leaveui "github.com/target/leave-ui"
	domainauth "github.com/target/leave-ui/internal/domain/auth"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthServiceInterface
	Leave      LeaveService
	Approvals  ApprovalService
	Admin      AdminService
	Dashboards DashboardLoader
	// LoginLimiter throttles POST /login when set.
	LoginLimiter *LoginRateLimiter
	Cookies      CookieConfig
	CSRF         CSRFConfig
	// Ready reports dependency health for /readyz (optional).
	Ready    ReadinessCheck
	Location *time.Location
	Now      func() time.Time
	// TemplateFS overrides the template source (tests). Defaults to disk in dev, embedded otherwise.
	TemplateFS fs.FS
	IsDev      bool         // Development mode flag for hot reloading, etc.
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS := services.TemplateFS
	if templateFS == nil {
		templateFS = templateSource(services.IsDev, logger)
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		return nil, err
	}

	ui := &UIHandlers{
		T:          tr,
		Leave:      services.Leave,
		Approvals:  services.Approvals,
		Admin:      services.Admin,
		Dashboards: services.Dashboards,
		Location:   services.Location,
		Now:        services.Now,
		IsDev:      services.IsDev,
		Logger:     logger,
	}
	authHandlers := &AuthHandlers{Svc: services.Auth, UI: ui, Cookies: services.Cookies, Logger: logger}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", readyHandler(services.Ready, logger))
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))
	registerAuthRoutes(mux, authHandlers, services.LoginLimiter)

	guard := RequireSession(SessionGuardOptions{Auth: services.Auth, Cookies: services.Cookies, Logger: logger})
	mux.Handle("/", guard(newRoleRouter(ui)))

	var handler http.Handler = mux
	handler = CSRFProtection(services.CSRF)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, limiter *LoginRateLimiter) {
	var login http.Handler = http.HandlerFunc(h.Login)
	if limiter != nil {
		login = limiter.Middleware(h.TooManyAttempts)(login)
	}
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.Handle("POST /login", login)
	mux.HandleFunc("POST /logout", h.Logout)
}

// roleRouter dispatches authenticated requests to the route table of the session's role.
type roleRouter struct {
	employee *http.ServeMux
	manager  *http.ServeMux
	admin    *http.ServeMux
}

func newRoleRouter(h *UIHandlers) *roleRouter {
	rr := &roleRouter{
		employee: http.NewServeMux(),
		manager:  http.NewServeMux(),
		admin:    http.NewServeMux(),
	}
	for _, mux := range []*http.ServeMux{rr.employee, rr.manager, rr.admin} {
		mux.HandleFunc("GET /{$}", h.Dashboard)
	}
	registerEmployeeRoutes(rr.employee, h)
	registerManagerRoutes(rr.manager, h)
	registerAdminRoutes(rr.admin, h)
	return rr
}

func (rr *roleRouter) muxFor(role domainauth.Role) *http.ServeMux {
	switch role {
	case domainauth.RoleEmployee:
		return rr.employee
	case domainauth.RoleManager:
		return rr.manager
	case domainauth.RoleAdmin:
		return rr.admin
	default:
		return nil
	}
}

// ServeHTTP routes by role. Paths outside the role's table go to the dashboard.
func (rr *roleRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}
	mux := rr.muxFor(session.Role)
	if mux == nil {
		redirectToLogin(w, r)
		return
	}
	if _, pattern := mux.Handler(r); pattern == "" {
		redirect(w, r, "/")
		return
	}
	mux.ServeHTTP(w, r)
}

func registerEmployeeRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /apply", h.ApplyPage)
	mux.HandleFunc("GET /apply/preview", h.ApplyPreview)
	mux.HandleFunc("POST /apply", h.ApplySubmit)
	mux.HandleFunc("GET /balance", h.BalancePage)
	mux.HandleFunc("GET /requests", h.RequestsPage)
	mux.HandleFunc("POST /requests/{id}/cancel", h.CancelRequest)
}

func registerManagerRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /manager/pending", h.PendingPage)
	mux.HandleFunc("GET /manager/history", h.HistoryPage)
	mux.HandleFunc("POST /manager/approve/{id}", h.Approve)
	mux.HandleFunc("POST /manager/reject/{id}", h.Reject)
}

func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /admin/users", h.Users)
	mux.HandleFunc("GET /admin/users/new", h.UserNew)
	mux.HandleFunc("GET /admin/users/{id}/edit", h.UserEdit)
	mux.HandleFunc("POST /admin/users", h.UserCreate)
	mux.HandleFunc("POST /admin/users/{id}", h.UserUpdate)
	mux.HandleFunc("POST /admin/users/{id}/delete", h.UserDelete)

	mux.HandleFunc("GET /admin/leave-types", h.LeaveTypes)
	mux.HandleFunc("GET /admin/leave-types/new", h.LeaveTypeNew)
	mux.HandleFunc("GET /admin/leave-types/{id}/edit", h.LeaveTypeEdit)
	mux.HandleFunc("POST /admin/leave-types", h.LeaveTypeCreate)
	mux.HandleFunc("POST /admin/leave-types/{id}", h.LeaveTypeUpdate)
	mux.HandleFunc("POST /admin/leave-types/{id}/delete", h.LeaveTypeDelete)

	mux.HandleFunc("GET /admin/holidays", h.Holidays)
	mux.HandleFunc("GET /admin/holidays/new", h.HolidayNew)
	mux.HandleFunc("GET /admin/holidays/{id}/edit", h.HolidayEdit)
	mux.HandleFunc("POST /admin/holidays", h.HolidayCreate)
	mux.HandleFunc("POST /admin/holidays/{id}", h.HolidayUpdate)
	mux.HandleFunc("POST /admin/holidays/{id}/delete", h.HolidayDelete)
}

// templateSource picks templates from disk in dev mode (hot reload) or the embedded FS.
func templateSource(isDev bool, logger *slog.Logger) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(leaveui.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		logger.Error("failed to open embedded templates; falling back to disk", "error", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* from disk in dev mode or from the embedded FS.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	var files http.FileSystem = http.Dir(staticPathFromRoot)
	if !isDev {
		sub, err := fs.Sub(leaveui.StaticFS, staticPathFromRoot)
		if err != nil {
			logger.Error("failed to open embedded static assets; falling back to disk", "error", err)
		} else {
			files = http.FS(sub)
		}
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(files)), isDev)
}

// staticWithCacheHeaders disables caching in dev and allows short-lived caching otherwise.
func staticWithCacheHeaders(handler http.Handler, isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		handler.ServeHTTP(w, r)
	})
}
