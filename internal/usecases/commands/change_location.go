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
	ChangeLocationCommand struct {
		DeviceID   model.DeviceID
		LocationID model.LocationID
	}

	ChangeLocationCommandHandler = decorator.CommandHandler[ChangeLocationCommand, *model.Device]

	changeLocationCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewChangeLocationCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ChangeLocationCommandHandler {
	return decorator.ApplyCommandDecorators[ChangeLocationCommand, *model.Device](
		changeLocationCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h changeLocationCommandHandler) Handle(ctx context.Context, cmd ChangeLocationCommand) (*model.Device, error) {
	return h.devicesService.ChangeLocation(ctx, cmd.DeviceID, cmd.LocationID)
}
