package runtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	inboundhttp "github.com/architeacher/inventory/internal/adapters/inbound/http"
	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/infrastructure"
	infraPostgres "github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/services"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/circuitbreaker"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	metricsOtel "github.com/architeacher/inventory/pkg/metrics/otel"
)

const (
	healthCheckTimeout = 2 * time.Second

	dependencyPostgres = "postgres"
	dependencyKeyDB    = "keydb"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithDatabaseSecrets(ctx),
		WithTracing(),
		WithMetrics(),
		WithDatabase(ctx),
		WithRepositories(),
		WithCache(),
		WithServices(),
		WithHealthChecker(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format).
			Named(d.config.App.ServiceName)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		client, err := infrastructure.NewVaultClient(d.config.SecretsStorage)
		if err != nil {
			return err
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client, d.config.SecretsStorage.MountPath)

		return nil
	}
}

func WithDatabaseSecrets(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.repos.secretsRepo == nil {
			return nil
		}

		if err := config.ApplyDatabaseSecrets(ctx, d.config, d.repos.secretsRepo); err != nil {
			return err
		}

		d.infra.logger.Info().
			Str("path", d.config.SecretsStorage.DatabasePath).
			Msg("database credentials loaded from Vault")

		return nil
	}
}

func WithTracing() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.TracingEnabled() {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.onCleanup("tracer", shutdown)

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled || d.config.Telemetry.OTLPEndpoint == "" {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		meter, shutdown, err := infrastructure.NewMeter(d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing meter: %w", err)
		}

		d.infra.metricsClient = metricsOtel.NewClient(meter, shutdown)
		d.onCleanup("metrics", d.infra.metricsClient.Shutdown)

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database, d.infra.logger)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.onCleanup(dependencyPostgres, func(context.Context) error {
			pool.Close()

			return nil
		})

		if !d.config.Database.MigrateOnStart {
			return nil
		}

		if err := infraPostgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}

		d.infra.logger.Info().Msg("database schema is up to date")

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		scanner := repos.NewPgxScanner()

		d.repos.transactor = repos.NewTransactor(d.infra.dbPool, d.infra.logger)
		d.repos.devicesRepo = repos.NewDevicesRepository(d.infra.dbPool, scanner)
		d.repos.portsRepo = repos.NewPortsRepository(d.infra.dbPool, scanner)
		d.repos.locationsRepo = repos.NewLocationsRepository(d.infra.dbPool, scanner)
		d.repos.historyRepo = repos.NewHistoryRepository(d.infra.dbPool, scanner)
		d.repos.locationHistory = repos.NewLocationHistoryRepository(d.infra.dbPool, scanner)

		return nil
	}
}

// WithCache connects KeyDB only when a feature that needs it is switched on.
func WithCache() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Idempotency.Enabled && !d.config.RateLimiting.Enabled {
			return nil
		}

		client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)
		d.infra.cacheClient = client
		d.onCleanup(dependencyKeyDB, func(context.Context) error {
			return client.Close()
		})

		if d.config.Idempotency.Enabled {
			cbConfig := d.config.Idempotency.CircuitBreaker
			breaker := circuitbreaker.New[any](circuitbreaker.Config{
				Enabled:          cbConfig.Enabled,
				Name:             "idempotency-cache",
				MaxRequests:      cbConfig.MaxRequests,
				Interval:         cbConfig.Interval,
				Timeout:          cbConfig.Timeout,
				FailureThreshold: cbConfig.FailureThreshold,
			}, func(name, from, to string) {
				d.infra.logger.Warn().
					Str("breaker", name).
					Str("from", from).
					Str("to", to).
					Msg("circuit breaker state changed")
			})

			d.repos.idempotencyRepo = repos.NewIdempotencyRepository(client, breaker)
		}

		if d.config.RateLimiting.Enabled {
			d.repos.rateLimitStore = repos.NewRateLimitStore(client)
		}

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.devices = services.NewDevicesService(
			d.repos.transactor,
			d.repos.devicesRepo,
			d.repos.portsRepo,
			d.repos.locationsRepo,
			d.repos.historyRepo,
		)
		d.services.locations = services.NewLocationsService(
			d.repos.transactor,
			d.repos.locationsRepo,
			d.repos.locationHistory,
			d.repos.devicesRepo,
			d.repos.historyRepo,
		)
		d.services.history = services.NewHistoryService(d.repos.historyRepo)

		return nil
	}
}

func WithHealthChecker() DependencyOption {
	return func(d *dependencies) error {
		pingers := map[string]ports.Pinger{
			dependencyPostgres: d.infra.dbPool,
		}

		if d.infra.cacheClient != nil {
			pingers[dependencyKeyDB] = d.infra.cacheClient
		}

		d.services.healthChecker = services.NewHealthService(
			model.VersionInfo{
				API:   d.config.App.APIVersion,
				Build: d.config.App.ServiceVersion,
			},
			healthCheckTimeout,
			pingers,
			dependencyPostgres,
		)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.apps.webApp = usecases.NewWebApplication(
			d.services.devices,
			d.services.locations,
			d.services.history,
			d.services.healthChecker,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:              d.apps.webApp,
			Logger:           d.infra.logger,
			MetricsClient:    d.infra.metricsClient,
			TracerProvider:   d.infra.tracerProvider,
			Config:           d.config,
			IdempotencyCache: d.repos.idempotencyRepo,
			RateLimitStore:   d.repos.rateLimitStore,
		})
		if err != nil {
			return fmt.Errorf("building router: %w", err)
		}

		d.infra.httpServer = &http.Server{
			Addr:         d.config.HTTPServer.Address(),
			Handler:      router,
			ReadTimeout:  d.config.HTTPServer.ReadTimeout,
			WriteTimeout: d.config.HTTPServer.WriteTimeout,
			IdleTimeout:  d.config.HTTPServer.IdleTimeout,
		}

		return nil
	}
}
