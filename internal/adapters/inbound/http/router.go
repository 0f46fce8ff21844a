package http

import (
	"fmt"
	"net/http"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/inventory/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const baseURL = "/v1"

type RouterConfig struct {
	App              *usecases.WebApplication
	Logger           logger.Logger
	MetricsClient    metrics.Client
	TracerProvider   otelTrace.TracerProvider
	Config           *config.ServiceConfig
	IdempotencyCache ports.IdempotencyCache
	RateLimitStore   throttled.GCRAStoreCtx
}

func NewRouter(cfg RouterConfig) (http.Handler, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))

	if cfg.Config.Logging.AccessLog.Enabled {
		router.Use(middleware.NewHealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks).Middleware)
		router.Use(middleware.NewAccessLogger(cfg.Logger).Middleware)
	}

	router.Use(chimiddleware.Timeout(cfg.Config.HTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.Config.CORS))

	if cfg.Config.Telemetry.Traces.Enabled && cfg.TracerProvider != nil {
		router.Use(middleware.Tracer(cfg.Config.App.ServiceName, cfg.TracerProvider))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient, routePattern).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.RateLimiting.Enabled && cfg.RateLimitStore != nil {
		rateLimiter, err := middleware.RateLimiting(cfg.Config.RateLimiting, cfg.RateLimitStore, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}

		router.Use(rateLimiter)
		cfg.Logger.Info().
			Int("requests_per_second", cfg.Config.RateLimiting.RequestsPerSecond).
			Int("burst_size", cfg.Config.RateLimiting.BurstSize).
			Msg("rate limiting enabled")
	}

	swagger, err := handlers.GetSwagger()
	if err != nil {
		return nil, err
	}

	swagger.Servers = openapi3.Servers{&openapi3.Server{URL: baseURL}}

	requestValidator, err := middleware.RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	router.Use(requestValidator)

	if cfg.Config.Idempotency.Enabled && cfg.IdempotencyCache != nil {
		router.Use(middleware.Idempotency(cfg.IdempotencyCache, cfg.Config.Idempotency, cfg.Logger))
		cfg.Logger.Info().Msg("idempotency keys enabled")
	}

	handler := handlers.NewHandler(cfg.App, baseURL)
	conditional := middleware.ConditionalGET(middleware.NewETagGenerator())

	router.Route(baseURL, func(r chi.Router) {
		handler.Mount(r, conditional)
	})

	return router, nil
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}
