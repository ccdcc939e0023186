package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/target/leave-ui/config"
)

// Run starts the web front-end and blocks until a shutdown signal arrives or the server fails.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("run requires an AppConfig")
	}
	if logger == nil {
		logger = slog.Default()
	}

	shutdownTracing, err := SetupTelemetry(ctx, cfg.Observability.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		if terr := shutdownTracing(context.WithoutCancel(ctx)); terr != nil {
			logger.ErrorContext(ctx, "flush traces failed", "error", terr)
		}
	}()

	var redisClient redis.UniversalClient
	if cfg.Session.Store == config.SessionStoreRedis {
		redisClient, err = ConnectRedis(ctx, RedisConnectConfig{Redis: cfg.Redis, Logger: logger})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services, err := NewServices(&ServiceDeps{Config: cfg, RedisClient: redisClient, Logger: logger})
	if err != nil {
		return err
	}
	if services.Metrics != nil {
		defer func() {
			if cerr := services.Metrics.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close statsd failed", "error", cerr)
			}
		}()
	}

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(&HTTPServerConfig{Config: cfg, Services: services, Logger: logger}, errCh)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		logger.InfoContext(ctx, "shutting down...")
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	case <-ctx.Done():
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	case serveErr := <-errCh:
		logger.ErrorContext(ctx, "service error", "error", serveErr)
		if stopErr := ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger); stopErr != nil {
			logger.ErrorContext(ctx, "graceful stop failed", "error", stopErr)
		}
		return serveErr
	}
}
