package usecases

import (
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateDevice   commands.CreateDeviceCommandHandler
		UpdateDevice   commands.UpdateDeviceCommandHandler
		AssignLocation commands.AssignLocationCommandHandler
		ChangeLocation commands.ChangeLocationCommandHandler
		ChangeStatus   commands.ChangeStatusCommandHandler
		ReplacePorts   commands.ReplacePortsCommandHandler
		DeleteDevice   commands.DeleteDeviceCommandHandler
		CreateLocation commands.CreateLocationCommandHandler
		UpdateLocation commands.UpdateLocationCommandHandler
		DeleteLocation commands.DeleteLocationCommandHandler
	}

	Queries struct {
		GetDevice          queries.GetDeviceQueryHandler
		ListDevices        queries.ListDevicesQueryHandler
		GetLocation        queries.GetLocationQueryHandler
		FindLocationByName queries.FindLocationByNameQueryHandler
		ListLocations      queries.ListLocationsQueryHandler
		LocationHistory    queries.LocationHistoryQueryHandler
		ListHistory        queries.ListHistoryQueryHandler
		FetchLiveness      queries.FetchLivenessQueryHandler
		FetchReadiness     queries.FetchReadinessQueryHandler
		FetchHealthReport  queries.FetchHealthReportQueryHandler
	}

	WebApplication struct {
		Commands Commands
		Queries  Queries
	}
)

func NewWebApplication(
	devicesSvc ports.DevicesService,
	locationsSvc ports.LocationsService,
	historySvc ports.HistoryService,
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *WebApplication {
	return &WebApplication{
		Commands: Commands{
			CreateDevice:   commands.NewCreateDeviceCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			UpdateDevice:   commands.NewUpdateDeviceCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			AssignLocation: commands.NewAssignLocationCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			ChangeLocation: commands.NewChangeLocationCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			ChangeStatus:   commands.NewChangeStatusCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			ReplacePorts:   commands.NewReplacePortsCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			DeleteDevice:   commands.NewDeleteDeviceCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			CreateLocation: commands.NewCreateLocationCommandHandler(locationsSvc, log, metricsClient, tracerProvider),
			UpdateLocation: commands.NewUpdateLocationCommandHandler(locationsSvc, log, metricsClient, tracerProvider),
			DeleteLocation: commands.NewDeleteLocationCommandHandler(locationsSvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetDevice:          queries.NewGetDeviceQueryHandler(devicesSvc, log, metricsClient, tracerProvider),
			ListDevices:        queries.NewListDevicesQueryHandler(devicesSvc, log, metricsClient, tracerProvider),
			GetLocation:        queries.NewGetLocationQueryHandler(locationsSvc, log, metricsClient, tracerProvider),
			FindLocationByName: queries.NewFindLocationByNameQueryHandler(locationsSvc, log, metricsClient, tracerProvider),
			ListLocations:      queries.NewListLocationsQueryHandler(locationsSvc, log, metricsClient, tracerProvider),
			LocationHistory:    queries.NewLocationHistoryQueryHandler(locationsSvc, log, metricsClient, tracerProvider),
			ListHistory:        queries.NewListHistoryQueryHandler(historySvc, log, metricsClient, tracerProvider),
			FetchLiveness:      queries.NewFetchLivenessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchReadiness:     queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport:  queries.NewFetchHealthReportQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
