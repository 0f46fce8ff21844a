package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// Transactor binds a pgx transaction to the context handed to the unit of work.
// Nested calls join the outer transaction.
type Transactor struct {
	pool   PoolOps
	logger logger.Logger
}

func NewTransactor(pool PoolOps, log logger.Logger) *Transactor {
	return &Transactor{
		pool:   pool,
		logger: log,
	}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", model.ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			t.rollback(ctx, tx)
			panic(p)
		}

		if err != nil {
			t.rollback(ctx, tx)

			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("%w: commit: %v", model.ErrTransaction, commitErr)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}

func (t *Transactor) rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		t.logger.Error().Err(err).Msg("failed to roll back transaction")
	}
}
