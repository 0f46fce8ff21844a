package repos

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
)

const locationsTable = "locations"

var locationColumns = []string{"id", "name", "description", "created_at", "updated_at"}

type (
	LocationsRepository struct {
		pool    PoolOps
		scanner Scanner
	}

	locationRow struct {
		ID          string    `db:"id"`
		Name        string    `db:"name"`
		Description string    `db:"description"`
		CreatedAt   time.Time `db:"created_at"`
		UpdatedAt   time.Time `db:"updated_at"`
	}
)

func NewLocationsRepository(pool PoolOps, scanner Scanner) *LocationsRepository {
	return &LocationsRepository{
		pool:    pool,
		scanner: scanner,
	}
}

func (r *LocationsRepository) Create(ctx context.Context, location *model.Location) error {
	query, args, err := psql.Insert(locationsTable).
		Columns(locationColumns...).
		Values(
			location.ID.String(),
			location.Name,
			location.Description,
			location.CreatedAt,
			location.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := executor(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return translateError(err, model.ErrDuplicateLocationName, nil)
	}

	return nil
}

func (r *LocationsRepository) FetchByID(ctx context.Context, id model.LocationID) (*model.Location, error) {
	location, err := r.findOne(ctx, sq.Eq{"id": id.String()})
	if err != nil {
		return nil, err
	}

	if location == nil {
		return nil, model.ErrLocationNotFound
	}

	return location, nil
}

func (r *LocationsRepository) FetchByName(ctx context.Context, name string) (*model.Location, error) {
	return r.findOne(ctx, sq.Eq{"name": name})
}

func (r *LocationsRepository) List(ctx context.Context) ([]*model.Location, error) {
	query, args, err := psql.Select(locationColumns...).
		From(locationsTable).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var locationRows []locationRow
	if err := r.scanner.ScanAll(&locationRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	locations := make([]*model.Location, 0, len(locationRows))
	for index := range locationRows {
		location, err := locationRows[index].toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}

		locations = append(locations, location)
	}

	return locations, nil
}

func (r *LocationsRepository) Update(ctx context.Context, location *model.Location) error {
	query, args, err := psql.Update(locationsTable).
		Set("name", location.Name).
		Set("description", location.Description).
		Set("updated_at", location.UpdatedAt).
		Where(sq.Eq{"id": location.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := executor(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, model.ErrDuplicateLocationName, nil)
	}

	if result.RowsAffected() == 0 {
		return model.ErrLocationNotFound
	}

	return nil
}

func (r *LocationsRepository) Delete(ctx context.Context, id model.LocationID) error {
	query, args, err := psql.Delete(locationsTable).
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
		return model.ErrLocationNotFound
	}

	return nil
}

func (r *LocationsRepository) Exists(ctx context.Context, id model.LocationID) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS(").
		From(locationsTable).
		Where(sq.Eq{"id": id.String()}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := executor(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return exists, nil
}

// findOne returns nil, nil when nothing matches.
func (r *LocationsRepository) findOne(ctx context.Context, criteria sq.Sqlizer) (*model.Location, error) {
	query, args, err := psql.Select(locationColumns...).
		From(locationsTable).
		Where(criteria).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var row locationRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return row.toModel()
}

func (row locationRow) toModel() (*model.Location, error) {
	id, err := model.ParseLocationID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return &model.Location{
		ID:          id,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
