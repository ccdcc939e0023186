package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/http/validation"
	"github.com/target/leave-ui/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	Restore(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc     AuthServiceInterface
	UI      *UIHandlers
	Cookies CookieConfig
	Logger  *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

var loginMeta = PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin}

// LoginPage renders the sign-in form.
// GET /login. A visitor who already holds a valid session goes straight to the dashboard.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if id := h.Cookies.sessionID(r); id != "" {
		_, err := h.Svc.Restore(r.Context(), id)
		switch {
		case err == nil:
			redirect(w, r, "/")
			return
		case errors.Is(err, service.ErrSessionInvalid):
			h.Cookies.clearSession(w, r)
		default:
			h.logger().WarnContext(r.Context(), "restore on login page failed", "error", err)
		}
	}

	h.UI.renderPage(w, r, NewTemplateData(r, loginMeta).With("Email", "").Build())
}

// Login exchanges credentials for a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := loginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	formData := map[string]any{"Email": form.Email}

	if errs := validation.Struct(form); errs != nil {
		RenderError(ErrorOpts{
			W: w, R: r,
			FieldErrors: errs,
			Renderer:    h.UI.renderPage,
			PageMeta:    loginMeta,
			Data:        formData,
		})
		return
	}

	session, err := h.Svc.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		h.logger().InfoContext(r.Context(), "login failed", "email", form.Email, "error", err)
		RenderError(ErrorOpts{
			W: w, R: r,
			Err:      err,
			Fallback: msgLoginFailed,
			Renderer: h.UI.renderPage,
			PageMeta: loginMeta,
			Data:     formData,
		})
		return
	}

	h.Cookies.setSession(w, r, session)
	h.logger().InfoContext(r.Context(), "user signed in", "user_id", session.UserID, "role", session.Role)
	redirect(w, r, "/")
}

// TooManyAttempts renders the sign-in form with a throttling notice.
func (h *AuthHandlers) TooManyAttempts(w http.ResponseWriter, r *http.Request) {
	h.logger().WarnContext(r.Context(), "login rate limited", "client", clientIP(r))
	data := NewTemplateData(r, loginMeta).
		WithError(msgTooManyLogins).
		With("Email", strings.TrimSpace(r.PostFormValue("email"))).
		Build()
	h.UI.renderPage(withStatus(w, http.StatusTooManyRequests), r, data)
}

// Logout deletes the server-side session and clears the cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if id := h.Cookies.sessionID(r); id != "" {
		if err := h.Svc.Logout(r.Context(), id); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	h.Cookies.clearSession(w, r)
	redirect(w, r, "/login")
}
