package commands

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
	UpdateLocationCommand struct {
		ID          model.LocationID
		Name        string
		Description string
	}

	UpdateLocationCommandHandler = decorator.CommandHandler[UpdateLocationCommand, *model.Location]

	updateLocationCommandHandler struct {
		locationsService ports.LocationsService
	}
)

func NewUpdateLocationCommandHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateLocationCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateLocationCommand, *model.Location](
		updateLocationCommandHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (*model.Location, error) {
	return h.locationsService.UpdateLocation(ctx, cmd.ID, cmd.Name, cmd.Description)
}
