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
	// DeleteLocationCommand detaches every device from the location before removing it.
	DeleteLocationCommand struct {
		ID model.LocationID
	}

	DeleteLocationCommandHandler = decorator.CommandHandler[DeleteLocationCommand, DeleteResult]

	deleteLocationCommandHandler struct {
		locationsService ports.LocationsService
	}
)

func NewDeleteLocationCommandHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteLocationCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteLocationCommand, DeleteResult](
		deleteLocationCommandHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) (DeleteResult, error) {
	if err := h.locationsService.DeleteLocation(ctx, cmd.ID); err != nil {
		return DeleteResult{Success: false}, err
	}

	return DeleteResult{Success: true}, nil
}
