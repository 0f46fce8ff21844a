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
	LocationHistoryQuery struct {
		ID model.LocationID
	}

	LocationHistoryQueryHandler = decorator.QueryHandler[LocationHistoryQuery, []*model.LocationHistoryEntry]

	locationHistoryQueryHandler struct {
		locationsService ports.LocationsService
	}
)

func NewLocationHistoryQueryHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) LocationHistoryQueryHandler {
	return decorator.ApplyQueryDecorators[LocationHistoryQuery, []*model.LocationHistoryEntry](
		locationHistoryQueryHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h locationHistoryQueryHandler) Execute(ctx context.Context, query LocationHistoryQuery) ([]*model.LocationHistoryEntry, error) {
	return h.locationsService.LocationHistory(ctx, query.ID)
}
