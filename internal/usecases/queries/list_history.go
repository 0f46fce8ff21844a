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
	// ListHistoryQuery lists every entry newest first, or only one device when DeviceID is set.
	ListHistoryQuery struct {
		DeviceID *model.DeviceID
	}

	ListHistoryQueryHandler = decorator.QueryHandler[ListHistoryQuery, []*model.HistoryEntry]

	listHistoryQueryHandler struct {
		historyService ports.HistoryService
	}
)

func NewListHistoryQueryHandler(
	svc ports.HistoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListHistoryQueryHandler {
	return decorator.ApplyQueryDecorators[ListHistoryQuery, []*model.HistoryEntry](
		listHistoryQueryHandler{historyService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listHistoryQueryHandler) Execute(ctx context.Context, query ListHistoryQuery) ([]*model.HistoryEntry, error) {
	return h.historyService.ListHistory(ctx, model.HistoryFilter{DeviceID: query.DeviceID})
}
