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
	GetLocationQuery struct {
		ID model.LocationID
	}

	GetLocationQueryHandler = decorator.QueryHandler[GetLocationQuery, *model.Location]

	getLocationQueryHandler struct {
		locationsService ports.LocationsService
	}
)

func NewGetLocationQueryHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetLocationQueryHandler {
	return decorator.ApplyQueryDecorators[GetLocationQuery, *model.Location](
		getLocationQueryHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getLocationQueryHandler) Execute(ctx context.Context, query GetLocationQuery) (*model.Location, error) {
	return h.locationsService.GetLocation(ctx, query.ID)
}
