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
	// ReplacePortsCommand swaps the whole port set; an empty Ports clears it.
	ReplacePortsCommand struct {
		DeviceID model.DeviceID
		Ports    []model.PortSpec
	}

	ReplacePortsCommandHandler = decorator.CommandHandler[ReplacePortsCommand, *model.Device]

	replacePortsCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewReplacePortsCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ReplacePortsCommandHandler {
	return decorator.ApplyCommandDecorators[ReplacePortsCommand, *model.Device](
		replacePortsCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h replacePortsCommandHandler) Handle(ctx context.Context, cmd ReplacePortsCommand) (*model.Device, error) {
	return h.devicesService.ReplacePorts(ctx, cmd.DeviceID, cmd.Ports)
}
