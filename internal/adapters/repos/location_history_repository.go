package repos

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/google/uuid"
)

const locationHistoryTable = "location_history"

var locationHistoryColumns = []string{
	"id", "location_id", "action", "old_name", "new_name", "old_description", "new_description", "timestamp",
}

type (
	LocationHistoryRepository struct {
		pool    PoolOps
		scanner Scanner
	}

	locationHistoryRow struct {
		ID             string    `db:"id"`
		LocationID     string    `db:"location_id"`
		Action         string    `db:"action"`
		OldName        string    `db:"old_name"`
		NewName        string    `db:"new_name"`
		OldDescription string    `db:"old_description"`
		NewDescription string    `db:"new_description"`
		Timestamp      time.Time `db:"timestamp"`
	}
)

func NewLocationHistoryRepository(pool PoolOps, scanner Scanner) *LocationHistoryRepository {
	return &LocationHistoryRepository{
		pool:    pool,
		scanner: scanner,
	}
}

func (r *LocationHistoryRepository) Append(ctx context.Context, entry model.LocationHistoryEntry) error {
	query, args, err := psql.Insert(locationHistoryTable).
		Columns(locationHistoryColumns...).
		Values(
			entry.ID.String(),
			entry.LocationID.String(),
			entry.Action.String(),
			entry.OldName,
			entry.NewName,
			entry.OldDescription,
			entry.NewDescription,
			entry.Timestamp,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return translateError(err, nil, model.ErrLocationNotFound)
	}

	return nil
}

func (r *LocationHistoryRepository) ListByLocation(
	ctx context.Context,
	id model.LocationID,
) ([]*model.LocationHistoryEntry, error) {
	query, args, err := psql.Select(locationHistoryColumns...).
		From(locationHistoryTable).
		Where(sq.Eq{"location_id": id.String()}).
		OrderBy("timestamp DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var historyRows []locationHistoryRow
	if err := r.scanner.ScanAll(&historyRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	entries := make([]*model.LocationHistoryEntry, 0, len(historyRows))
	for _, row := range historyRows {
		historyID, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse history ID: %v", model.ErrDatabaseQuery, err)
		}

		locationID, err := model.ParseLocationID(row.LocationID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		entries = append(entries, &model.LocationHistoryEntry{
			ID:             model.HistoryID{UUID: historyID},
			LocationID:     locationID,
			Action:         model.Action(row.Action),
			OldName:        row.OldName,
			NewName:        row.NewName,
			OldDescription: row.OldDescription,
			NewDescription: row.NewDescription,
			Timestamp:      row.Timestamp,
		})
	}

	return entries, nil
}
