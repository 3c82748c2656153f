// Package main is the entrypoint for the Subcheck API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/subcheck/subcheck/internal/cache"
	"github.com/subcheck/subcheck/internal/config"
	"github.com/subcheck/subcheck/internal/metrics"
	"github.com/subcheck/subcheck/internal/ratelimit"
	"github.com/subcheck/subcheck/internal/server"
	"github.com/subcheck/subcheck/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Load the subscription table. The record set is fixed for the
	// process lifetime; there is no persistence layer behind it.
	st, err := loadStore(cfg)
	if err != nil {
		logger.Error("failed to load subscription store", "error", err)
		os.Exit(1)
	}
	logger.Info("subscription store loaded", "records", st.Len())

	// Pick the rate limiter backend. Redis shares window state across
	// instances; the in-process limiter is the default.
	var limiter ratelimit.Limiter
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to Redis")
		limiter = cache.NewLimiter(cacheClient, cfg.RateLimitMax, cfg.RateLimitWindow)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	router := server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Store:     st,
		Limiter:   limiter,
		Metrics:   metrics.NewInMemory(),
		Logger:    logger,
		StartedAt: time.Now(),
	})

	srv := server.New(
		router,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// loadStore builds the lookup store from the configured seed file, falling
// back to the built-in demo records.
func loadStore(cfg *config.Config) (*store.Store, error) {
	if cfg.SubscriptionsFile != "" {
		return store.LoadFile(cfg.SubscriptionsFile)
	}
	return store.New(store.DefaultSeed())
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
