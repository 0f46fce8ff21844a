package repos

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type (
	// PoolOps is the subset of pgxpool.Pool the repositories need.
	// pgxmock.PgxPoolIface satisfies it in tests.
	PoolOps interface {
		querier
		Begin(ctx context.Context) (pgx.Tx, error)
		Ping(ctx context.Context) error
	}

	// querier is implemented by both the pool and an open pgx.Tx.
	querier interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	}

	// Scanner maps pgx rows onto tagged structs.
	Scanner interface {
		ScanAll(dst any, rows pgx.Rows) error
		ScanOne(dst any, rows pgx.Rows) error
		IsNotFound(err error) bool
	}

	PgxScanner struct{}

	txKey struct{}
)

func NewPgxScanner() PgxScanner {
	return PgxScanner{}
}

func (PgxScanner) ScanAll(dst any, rows pgx.Rows) error {
	return pgxscan.ScanAll(dst, rows)
}

func (PgxScanner) ScanOne(dst any, rows pgx.Rows) error {
	return pgxscan.ScanOne(dst, rows)
}

func (PgxScanner) IsNotFound(err error) bool {
	return pgxscan.NotFound(err)
}

// executor returns the transaction bound to ctx by the Transactor, or the pool.
func executor(ctx context.Context, pool PoolOps) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}

	return pool
}

// translateError classifies driver errors into domain kinds. onUnique and onForeignKey
// replace the matching constraint violations when non-nil.
func translateError(err error, onUnique, onForeignKey error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && onUnique != nil:
			return onUnique
		case pgErr.Code == pgForeignKeyViolation && onForeignKey != nil:
			return onForeignKey
		}
	}

	return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
}

func nullableLocationID(id *model.LocationID) any {
	if id == nil {
		return nil
	}

	return id.String()
}

func parseNullableLocationID(raw *string) (*model.LocationID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := model.ParseLocationID(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
