package httpx

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionGuardOptions configures RequireSession.
type SessionGuardOptions struct {
	Auth    AuthServiceInterface
	Cookies CookieConfig
	Logger  *slog.Logger
}

// RequireSession resolves the session cookie and places the session in the request context.
// Requests without a usable session are sent to /login.
//
// The downstream response is buffered. If the backend rejects the session's token while the
// request is being served, the session is revoked: the buffered response is discarded, the
// cookie is cleared and the browser is sent to /login instead.
func RequireSession(opts SessionGuardOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := opts.Cookies.sessionID(r)
			if id == "" {
				redirectToLogin(w, r)
				return
			}

			session, err := opts.Auth.Restore(r.Context(), id)
			if err != nil {
				if !errors.Is(err, service.ErrSessionInvalid) {
					logger.ErrorContext(r.Context(), "restore session failed", "error", err)
					http.Error(w, msgServiceUnavailable, http.StatusServiceUnavailable)
					return
				}
				opts.Cookies.clearSession(w, r)
				redirectToLogin(w, r)
				return
			}

			ctx, rev := domainauth.WithRevocation(SetSessionInContext(r.Context(), session))
			cw := newCaptureWriter()
			next.ServeHTTP(cw, r.WithContext(ctx))

			if rev.Revoked() {
				logger.InfoContext(r.Context(), "session revoked during request",
					"user_id", session.UserID,
					"path", r.URL.Path,
				)
				opts.Cookies.clearSession(w, r)
				redirectToLogin(w, r)
				return
			}
			cw.flushTo(w, logger)
		})
	}
}

// redirectToLogin sends the browser to the login page. htmx requests get Hx-Redirect so the
// whole page navigates instead of swapping the login form into a fragment.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/login")
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter, logger *slog.Logger) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		logger.Warn("failed to write captured response", "error", err)
	}
}
