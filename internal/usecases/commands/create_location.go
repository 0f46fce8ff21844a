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
	CreateLocationCommand struct {
		Name        string
		Description string
	}

	CreateLocationCommandHandler = decorator.CommandHandler[CreateLocationCommand, *model.Location]

	createLocationCommandHandler struct {
		locationsService ports.LocationsService
	}
)

func NewCreateLocationCommandHandler(
	svc ports.LocationsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateLocationCommandHandler {
	return decorator.ApplyCommandDecorators[CreateLocationCommand, *model.Location](
		createLocationCommandHandler{locationsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*model.Location, error) {
	return h.locationsService.CreateLocation(ctx, cmd.Name, cmd.Description)
}
