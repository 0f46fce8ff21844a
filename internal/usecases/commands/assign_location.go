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
	AssignLocationCommand struct {
		DeviceID   model.DeviceID
		LocationID model.LocationID
	}

	AssignLocationCommandHandler = decorator.CommandHandler[AssignLocationCommand, *model.Device]

	assignLocationCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewAssignLocationCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) AssignLocationCommandHandler {
	return decorator.ApplyCommandDecorators[AssignLocationCommand, *model.Device](
		assignLocationCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h assignLocationCommandHandler) Handle(ctx context.Context, cmd AssignLocationCommand) (*model.Device, error) {
	return h.devicesService.AssignLocation(ctx, cmd.DeviceID, cmd.LocationID)
}
