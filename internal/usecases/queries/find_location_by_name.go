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
	// FindLocationByNameQuery resolves to nil when no location carries the name.
	FindLocationByNameQuery struct {
		Name string
	}

	FindLocationByNameQueryHandler = decorator.QueryHandler[FindLocationByNameQuery, *model.Location]

	findLocationByNameQueryHandler struct {
		locationsService ports.LocationsService
	}
)

func NewFindLocationByNameQueryHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FindLocationByNameQueryHandler {
	return decorator.ApplyQueryDecorators[FindLocationByNameQuery, *model.Location](
		findLocationByNameQueryHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h findLocationByNameQueryHandler) Execute(ctx context.Context, query FindLocationByNameQuery) (*model.Location, error) {
	return h.locationsService.FindLocationByName(ctx, query.Name)
}
