package repos

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
)

const devicesTable = "devices"

var (
	deviceColumns = []string{"id", "ip", "status", "description", "protocol", "location_id", "created_at", "updated_at"}

	deviceWithLocationColumns = []string{
		"d.id", "d.ip", "d.status", "d.description", "d.protocol", "d.location_id", "d.created_at", "d.updated_at",
		"l.name AS location_name", "l.description AS location_description",
		"l.created_at AS location_created_at", "l.updated_at AS location_updated_at",
	}
)

type (
	DevicesRepository struct {
		pool    PoolOps
		scanner Scanner
	}

	deviceRow struct {
		ID          string    `db:"id"`
		IP          string    `db:"ip"`
		Status      string    `db:"status"`
		Description string    `db:"description"`
		Protocol    string    `db:"protocol"`
		LocationID  *string   `db:"location_id"`
		CreatedAt   time.Time `db:"created_at"`
		UpdatedAt   time.Time `db:"updated_at"`
	}

	deviceWithLocationRow struct {
		deviceRow
		LocationName        *string    `db:"location_name"`
		LocationDescription *string    `db:"location_description"`
		LocationCreatedAt   *time.Time `db:"location_created_at"`
		LocationUpdatedAt   *time.Time `db:"location_updated_at"`
	}
)

func NewDevicesRepository(pool PoolOps, scanner Scanner) *DevicesRepository {
	return &DevicesRepository{
		pool:    pool,
		scanner: scanner,
	}
}

func (r *DevicesRepository) Create(ctx context.Context, device *model.Device) error {
	query, args, err := psql.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(
			device.ID.String(),
			device.IP,
			device.Status,
			device.Description,
			device.Protocol,
			nullableLocationID(device.LocationID),
			device.CreatedAt,
			device.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return translateError(err, nil, model.ErrUnknownLocation)
	}

	return nil
}

func (r *DevicesRepository) FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	return r.findOne(ctx, r.selectWithLocation().Where(sq.Eq{"d.id": id.String()}))
}

func (r *DevicesRepository) FetchForUpdate(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	return r.findOne(ctx, r.selectWithLocation().Where(sq.Eq{"d.id": id.String()}).Suffix("FOR UPDATE OF d"))
}

func (r *DevicesRepository) List(ctx context.Context) ([]*model.Device, error) {
	query, args, err := r.selectWithLocation().OrderBy("d.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var deviceRows []deviceWithLocationRow
	if err := r.scanner.ScanAll(&deviceRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	devices := make([]*model.Device, 0, len(deviceRows))
	for index := range deviceRows {
		device, err := deviceRows[index].toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

func (r *DevicesRepository) Update(ctx context.Context, device *model.Device) error {
	query, args, err := psql.Update(devicesTable).
		Set("ip", device.IP).
		Set("status", device.Status).
		Set("description", device.Description).
		Set("protocol", device.Protocol).
		Set("location_id", nullableLocationID(device.LocationID)).
		Set("updated_at", device.UpdatedAt).
		Where(sq.Eq{"id": device.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := executor(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, nil, model.ErrUnknownLocation)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

func (r *DevicesRepository) Delete(ctx context.Context, id model.DeviceID) error {
	query, args, err := psql.Delete(devicesTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := executor(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

// DetachFromLocation returns the detached devices with LocationID still pointing at id
// and UpdatedAt already moved forward.
func (r *DevicesRepository) DetachFromLocation(ctx context.Context, id model.LocationID) ([]*model.Device, error) {
	query, args, err := psql.Update(devicesTable).
		Set("location_id", nil).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"location_id": id.String()}).
		Suffix("RETURNING id, ip, status, description, protocol, location_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var deviceRows []deviceRow
	if err := r.scanner.ScanAll(&deviceRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	devices := make([]*model.Device, 0, len(deviceRows))
	for index := range deviceRows {
		device, err := deviceRows[index].toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		locationID := id
		device.LocationID = &locationID
		devices = append(devices, device)
	}

	return devices, nil
}

func (r *DevicesRepository) selectWithLocation() sq.SelectBuilder {
	return psql.Select(deviceWithLocationColumns...).
		From(devicesTable + " d").
		LeftJoin(locationsTable + " l ON l.id = d.location_id")
}

func (r *DevicesRepository) findOne(ctx context.Context, builder sq.SelectBuilder) (*model.Device, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var row deviceWithLocationRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return row.toModel()
}

func (row deviceRow) toModel() (*model.Device, error) {
	id, err := model.ParseDeviceID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse device ID: %w", err)
	}

	locationID, err := parseNullableLocationID(row.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return &model.Device{
		ID:          id,
		IP:          row.IP,
		Status:      row.Status,
		Description: row.Description,
		Protocol:    row.Protocol,
		LocationID:  locationID,
		Ports:       []model.Port{},
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func (row deviceWithLocationRow) toModel() (*model.Device, error) {
	device, err := row.deviceRow.toModel()
	if err != nil {
		return nil, err
	}

	if device.LocationID != nil && row.LocationName != nil {
		location := &model.Location{
			ID:   *device.LocationID,
			Name: *row.LocationName,
		}
		if row.LocationDescription != nil {
			location.Description = *row.LocationDescription
		}
		if row.LocationCreatedAt != nil {
			location.CreatedAt = *row.LocationCreatedAt
		}
		if row.LocationUpdatedAt != nil {
			location.UpdatedAt = *row.LocationUpdatedAt
		}

		device.Location = location
	}

	return device, nil
}
