package server

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/subcheck/subcheck/internal/audit"
	"github.com/subcheck/subcheck/internal/config"
	"github.com/subcheck/subcheck/internal/handler"
	"github.com/subcheck/subcheck/internal/metrics"
	"github.com/subcheck/subcheck/internal/middleware"
	"github.com/subcheck/subcheck/internal/ratelimit"
	"github.com/subcheck/subcheck/internal/store"
)

// RouterDeps carries the dependencies the request pipeline is built from.
type RouterDeps struct {
	Config    *config.Config
	Store     *store.Store
	Limiter   ratelimit.Limiter
	Metrics   metrics.Recorder
	Logger    *slog.Logger
	StartedAt time.Time
}

// NewRouter assembles the full request pipeline.
//
// Every request passes security headers → CORS → request ID → logging →
// recovery; the /verify route additionally passes rate limiting and input
// validation before reaching the verification handler.
func NewRouter(deps RouterDeps) *chi.Mux {
	cfg := deps.Config

	recorder := deps.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	r := chi.NewRouter()

	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:   cfg.IsDevelopment(),
		ExtraConnectSrc: cfg.GetCSPConnectSources(),
	}))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.Production = cfg.IsProduction()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	h := handler.New()
	healthHandler := handler.NewHealthHandler(deps.StartedAt, cfg.MaintenanceMode)
	verifyHandler := handler.NewVerifyHandler(
		deps.Store,
		audit.NewLogger(deps.Logger),
		deps.Logger,
		recorder,
	)

	r.Get("/", h.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/api/status", healthHandler.Status)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  deps.Logger,
		Limiter: deps.Limiter,
		Metrics: recorder,
	}

	r.With(
		middleware.RateLimit(rateLimitCfg),
		middleware.ValidateSubscriptionID(),
	).Post("/verify", verifyHandler.Verify)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
