package repos

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/google/uuid"
)

const portsTable = "ports"

var portColumns = []string{"id", "device_id", "number", "description", "position"}

type (
	PortsRepository struct {
		pool    PoolOps
		scanner Scanner
	}

	portRow struct {
		ID          string `db:"id"`
		DeviceID    string `db:"device_id"`
		Number      int    `db:"number"`
		Description string `db:"description"`
		Position    int    `db:"position"`
	}
)

func NewPortsRepository(pool PoolOps, scanner Scanner) *PortsRepository {
	return &PortsRepository{
		pool:    pool,
		scanner: scanner,
	}
}

func (r *PortsRepository) DeleteByDevice(ctx context.Context, deviceID model.DeviceID) error {
	query, args, err := psql.Delete(portsTable).
		Where(sq.Eq{"device_id": deviceID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

// InsertAll writes the whole set in a single statement.
func (r *PortsRepository) InsertAll(ctx context.Context, ports []model.Port) error {
	if len(ports) == 0 {
		return nil
	}

	builder := psql.Insert(portsTable).Columns(portColumns...)
	for _, port := range ports {
		builder = builder.Values(
			port.ID.String(),
			port.DeviceID.String(),
			port.Number,
			port.Description,
			port.Position,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return translateError(err, nil, model.ErrDeviceNotFound)
	}

	return nil
}

func (r *PortsRepository) ListByDevices(
	ctx context.Context,
	deviceIDs ...model.DeviceID,
) (map[model.DeviceID][]model.Port, error) {
	result := make(map[model.DeviceID][]model.Port, len(deviceIDs))
	if len(deviceIDs) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		ids = append(ids, id.String())
	}

	query, args, err := psql.Select(portColumns...).
		From(portsTable).
		Where(sq.Eq{"device_id": ids}).
		OrderBy("device_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var portRows []portRow
	if err := r.scanner.ScanAll(&portRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	for _, row := range portRows {
		port, err := row.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		result[port.DeviceID] = append(result[port.DeviceID], port)
	}

	return result, nil
}

func (row portRow) toModel() (model.Port, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return model.Port{}, fmt.Errorf("failed to parse port ID: %w", err)
	}

	deviceID, err := model.ParseDeviceID(row.DeviceID)
	if err != nil {
		return model.Port{}, fmt.Errorf("failed to parse device ID: %w", err)
	}

	return model.Port{
		ID:          model.PortID{UUID: id},
		DeviceID:    deviceID,
		Number:      row.Number,
		Description: row.Description,
		Position:    row.Position,
	}, nil
}
