package repos_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

type txRepos struct {
	tx      *repos.Transactor
	devices *repos.DevicesRepository
}

func newTxRepos(pool repos.PoolOps, scanner repos.Scanner) txRepos {
	return txRepos{
		tx:      repos.NewTransactor(pool, logger.NewTestLogger()),
		devices: repos.NewDevicesRepository(pool, scanner),
	}
}

func TestTransactor_WithinTransaction(t *testing.T) {
	t.Parallel()

	deviceID := model.NewDeviceID()
	errBoom := errors.New("boom")

	t.Run("commits when the unit of work succeeds", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM devices WHERE id = $1`)).
					WithArgs(deviceID.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			func(t *testing.T, r txRepos) {
				err := r.tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
					return r.devices.Delete(ctx, deviceID)
				})
				require.NoError(t, err)
			},
		)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			func(t *testing.T, r txRepos) {
				err := r.tx.WithinTransaction(context.Background(), func(context.Context) error {
					return errBoom
				})
				require.ErrorIs(t, err, errBoom)
			},
		)
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			func(t *testing.T, r txRepos) {
				require.Panics(t, func() {
					_ = r.tx.WithinTransaction(context.Background(), func(context.Context) error {
						panic("unexpected")
					})
				})
			},
		)
	})

	t.Run("commit failure is a transaction error", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errBoom)
			},
			func(t *testing.T, r txRepos) {
				err := r.tx.WithinTransaction(context.Background(), func(context.Context) error {
					return nil
				})
				require.ErrorIs(t, err, model.ErrTransaction)
				require.ErrorIs(t, err, model.ErrPersistence)
			},
		)
	})

	t.Run("nested calls join the outer transaction", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			func(t *testing.T, r txRepos) {
				err := r.tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
					return r.tx.WithinTransaction(ctx, func(context.Context) error { return nil })
				})
				require.NoError(t, err)
			},
		)
	})

	t.Run("begin failure is a transaction error", func(t *testing.T) {
		runRepoTest(t, newTxRepos,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errBoom)
			},
			func(t *testing.T, r txRepos) {
				err := r.tx.WithinTransaction(context.Background(), func(context.Context) error {
					t.Fatal("unit of work must not run")

					return nil
				})
				require.ErrorIs(t, err, model.ErrTransaction)
			},
		)
	})
}
