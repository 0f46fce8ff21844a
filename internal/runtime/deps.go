package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/infrastructure"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		httpServer     *http.Server
		dbPool         *pgxpool.Pool
		cacheClient    *infrastructure.KeydbClient
		logger         logger.Logger
		metricsClient  metrics.Client
		tracerProvider otelTrace.TracerProvider
	}

	repositories struct {
		secretsRepo     ports.SecretsRepository
		transactor      ports.Transactor
		devicesRepo     ports.DevicesRepository
		portsRepo       ports.PortsRepository
		locationsRepo   ports.LocationsRepository
		historyRepo     ports.HistoryRepository
		locationHistory ports.LocationHistoryRepository
		idempotencyRepo ports.IdempotencyCache
		rateLimitStore  throttled.GCRAStoreCtx
	}

	servicesDep struct {
		devices       ports.DevicesService
		locations     ports.LocationsService
		history       ports.HistoryService
		healthChecker ports.HealthChecker
	}

	applications struct {
		webApp *usecases.WebApplication
	}

	cleanupFunc struct {
		resource string
		fn       func(ctx context.Context) error
	}

	dependencies struct {
		config *config.ServiceConfig

		infra infrastructureDep

		repos repositories

		services servicesDep

		apps applications

		// cleanupFuncs run in reverse registration order on shutdown.
		cleanupFuncs []cleanupFunc
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			deps.cleanup(ctx)

			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

func (d *dependencies) onCleanup(resource string, fn func(ctx context.Context) error) {
	d.cleanupFuncs = append(d.cleanupFuncs, cleanupFunc{resource: resource, fn: fn})
}

func (d *dependencies) cleanup(ctx context.Context) {
	for index := len(d.cleanupFuncs) - 1; index >= 0; index-- {
		resource := d.cleanupFuncs[index]

		if err := resource.fn(ctx); err != nil {
			d.infra.logger.Error().
				Err(err).
				Str("resource", resource.resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	d.cleanupFuncs = nil
}
