package services

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

// HistoryService is read-only. Entries are only written by the device and location workflows.
type HistoryService struct {
	history ports.HistoryRepository
}

func NewHistoryService(history ports.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

func (s *HistoryService) ListHistory(ctx context.Context, filter model.HistoryFilter) ([]*model.HistoryEntry, error) {
	return s.history.List(ctx, filter)
}
