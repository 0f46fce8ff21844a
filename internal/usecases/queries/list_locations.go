package queries

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/pkg/decorator"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListLocationsQuery struct{}

	ListLocationsQueryHandler = decorator.QueryHandler[ListLocationsQuery, []*model.Location]

	listLocationsQueryHandler struct {
		locationsService ports.LocationsService
	}
)

func NewListLocationsQueryHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListLocationsQueryHandler {
	return decorator.ApplyQueryDecorators[ListLocationsQuery, []*model.Location](
		listLocationsQueryHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listLocationsQueryHandler) Execute(ctx context.Context, _ ListLocationsQuery) ([]*model.Location, error) {
	return h.locationsService.ListLocations(ctx)
}
