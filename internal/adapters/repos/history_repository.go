package repos

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/google/uuid"
)

const historyTable = "assignment_history"

var historyColumns = []string{
	"id", "device_id", "action", "old_status", "new_status", "old_location_id", "new_location_id", "timestamp",
}

type (
	// HistoryRepository stores the device audit trail. Rows outlive the device they describe.
	HistoryRepository struct {
		pool    PoolOps
		scanner Scanner
	}

	historyRow struct {
		ID            string    `db:"id"`
		DeviceID      string    `db:"device_id"`
		Action        string    `db:"action"`
		OldStatus     string    `db:"old_status"`
		NewStatus     string    `db:"new_status"`
		OldLocationID *string   `db:"old_location_id"`
		NewLocationID *string   `db:"new_location_id"`
		Timestamp     time.Time `db:"timestamp"`
	}
)

func NewHistoryRepository(pool PoolOps, scanner Scanner) *HistoryRepository {
	return &HistoryRepository{
		pool:    pool,
		scanner: scanner,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, entries ...model.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := psql.Insert(historyTable).Columns(historyColumns...)
	for _, entry := range entries {
		builder = builder.Values(
			entry.ID.String(),
			entry.DeviceID.String(),
			entry.Action.String(),
			entry.OldStatus,
			entry.NewStatus,
			nullableLocationID(entry.OldLocationID),
			nullableLocationID(entry.NewLocationID),
			entry.Timestamp,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *HistoryRepository) List(ctx context.Context, filter model.HistoryFilter) ([]*model.HistoryEntry, error) {
	builder := psql.Select(historyColumns...).
		From(historyTable).
		OrderBy("timestamp DESC", "id DESC")

	if filter.DeviceID != nil {
		builder = builder.Where(sq.Eq{"device_id": filter.DeviceID.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var historyRows []historyRow
	if err := r.scanner.ScanAll(&historyRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	entries := make([]*model.HistoryEntry, 0, len(historyRows))
	for index := range historyRows {
		entry, err := historyRows[index].toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (row historyRow) toModel() (*model.HistoryEntry, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse history ID: %w", err)
	}

	deviceID, err := model.ParseDeviceID(row.DeviceID)
	if err != nil {
		return nil, err
	}

	oldLocationID, err := parseNullableLocationID(row.OldLocationID)
	if err != nil {
		return nil, err
	}

	newLocationID, err := parseNullableLocationID(row.NewLocationID)
	if err != nil {
		return nil, err
	}

	return &model.HistoryEntry{
		ID:            model.HistoryID{UUID: id},
		DeviceID:      deviceID,
		Action:        model.Action(row.Action),
		OldStatus:     row.OldStatus,
		NewStatus:     row.NewStatus,
		OldLocationID: oldLocationID,
		NewLocationID: newLocationID,
		Timestamp:     row.Timestamp,
	}, nil
}
