package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/leave-ui/config"
	"github.com/target/leave-ui/internal/adapters/memory"
	redisadapter "github.com/target/leave-ui/internal/adapters/redis"
	"github.com/target/leave-ui/internal/backend"
	httpx "github.com/target/leave-ui/internal/http"
	"github.com/target/leave-ui/internal/observability/statsd"
	"github.com/target/leave-ui/internal/ports"
	"github.com/target/leave-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Backend      *backend.Client
	Auth         *service.AuthService
	Dashboards   *service.DashboardService
	Sessions     ports.SessionStore
	LoginLimiter *httpx.LoginRateLimiter
	Ready        httpx.ReadinessCheck
	// Metrics is nil when metrics are disabled or the sink could not be reached.
	Metrics *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	// RedisClient is required when the session store is redis.
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the backend client, session handling and dashboards together.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps require an AppConfig")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := buildMetrics(logger, cfg.Observability.Metrics)

	var sink statsd.Sink
	if metrics != nil {
		sink = metrics
	}
	client, err := backend.NewClient(backend.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Timeout:           cfg.Backend.Timeout,
		MessageExpression: cfg.Backend.MessageExpression,
		Metrics:           sink,
		Logger:            logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create backend client: %w", err)
	}

	sessions, ready, err := buildSessionStore(cfg, deps.RedisClient)
	if err != nil {
		return ServiceContainer{}, err
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		Backend:         client,
		Sessions:        sessions,
		SessionTTL:      cfg.Session.TTL,
		RefreshInterval: cfg.Session.RefreshInterval,
		Logger:          logger,
	})
	// A 401 on any authenticated call ends the session that made it.
	client.OnUnauthorized(auth.HandleUnauthorized)

	return ServiceContainer{
		Backend:      client,
		Auth:         auth,
		Dashboards:   service.NewDashboardService(service.DashboardServiceOptions{Backend: client}),
		Sessions:     sessions,
		LoginLimiter: httpx.NewLoginRateLimiter(cfg.LoginRate.PerMinute, cfg.LoginRate.Burst),
		Ready:        ready,
		Metrics:      metrics,
	}, nil
}

// buildSessionStore selects the configured store and a readiness probe for it.
//
//nolint:ireturn // the store kind is a runtime choice.
func buildSessionStore(cfg *config.AppConfig, client redis.UniversalClient) (ports.SessionStore, httpx.ReadinessCheck, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return memory.NewSessionStore(), nil, nil
	case config.SessionStoreRedis, "":
		if client == nil {
			return nil, nil, errors.New("redis session store selected but no redis client is configured")
		}
		store := redisadapter.NewSessionStore(client, redisadapter.WithPrefix(cfg.Redis.KeyPrefix))
		ready := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return store, ready, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

// buildMetrics dials the statsd sink. Failures are logged and metrics stay off.
func buildMetrics(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}
