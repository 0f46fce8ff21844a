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
	ChangeStatusCommand struct {
		DeviceID model.DeviceID
		Status   string
	}

	ChangeStatusCommandHandler = decorator.CommandHandler[ChangeStatusCommand, *model.Device]

	changeStatusCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewChangeStatusCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ChangeStatusCommandHandler {
	return decorator.ApplyCommandDecorators[ChangeStatusCommand, *model.Device](
		changeStatusCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h changeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (*model.Device, error) {
	return h.devicesService.ChangeStatus(ctx, cmd.DeviceID, cmd.Status)
}
