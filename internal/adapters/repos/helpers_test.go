package repos_test

import (
	"testing"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func runRepoTest[R any](
	t *testing.T,
	newRepo func(repos.PoolOps, repos.Scanner) R,
	setupMock func(pgxmock.PgxPoolIface),
	testFn func(*testing.T, R),
) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)

	testFn(t, newRepo(mock, repos.NewPgxScanner()))

	require.NoError(t, mock.ExpectationsWereMet())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "constraint violation"}
}

func ptr[T any](v T) *T {
	return &v
}
