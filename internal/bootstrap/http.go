package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/target/leave-ui/config"
	httpx "github.com/target/leave-ui/internal/http"
)

const (
	serverReadTimeout  = 30 * time.Second
	serverWriteTimeout = 30 * time.Second
	serverIdleTimeout  = 120 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler assembles the router and wraps it for tracing.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config requires an AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	secure := appCfg.SecureCookies()

	router, err := httpx.NewRouter(httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Leave:        cfg.Services.Backend,
		Approvals:    cfg.Services.Backend,
		Admin:        cfg.Services.Backend,
		Dashboards:   cfg.Services.Dashboards,
		LoginLimiter: cfg.Services.LoginLimiter,
		Cookies: httpx.CookieConfig{
			Name:   appCfg.Session.CookieName,
			Domain: appCfg.HTTP.CookieDomain,
			Secure: secure,
		},
		CSRF:     httpx.CSRFConfig{CookieDomain: appCfg.HTTP.CookieDomain, Secure: secure},
		Ready:    cfg.Services.Ready,
		Location: appCfg.LocationOrUTC(),
		IsDev:    appCfg.IsDev,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	return otelhttp.NewHandler(router, "leave-ui",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/readyz"
		}),
	), nil
}

// StartHTTPServer creates and starts the HTTP server. Serve errors are sent on errCh.
func StartHTTPServer(cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := cfg.Config.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
	}()

	return server, nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}
