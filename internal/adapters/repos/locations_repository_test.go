package repos_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var locationColumns = []string{"id", "name", "description", "created_at", "updated_at"}

func newLocationsRepo(pool repos.PoolOps, scanner repos.Scanner) *repos.LocationsRepository {
	return repos.NewLocationsRepository(pool, scanner)
}

func TestLocationsRepository_Create(t *testing.T) {
	t.Parallel()

	const insertSQL = `INSERT INTO locations (id,name,description,created_at,updated_at) VALUES ($1,$2,$3,$4,$5)`

	cases := []struct {
		name        string
		execErr     error
		expectedErr error
	}{
		{
			name: "inserts location",
		},
		{
			name:        "unique violation is a duplicate name",
			execErr:     pgError("23505"),
			expectedErr: model.ErrDuplicateName,
		},
		{
			name:        "other failures are database errors",
			execErr:     errors.New("connection refused"),
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		location, err := model.NewLocation("Lab", "second floor")
		require.NoError(t, err)

		t.Run(tc.name, func(t *testing.T) {
			runRepoTest(t, newLocationsRepo,
				func(mock pgxmock.PgxPoolIface) {
					expectation := mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
						WithArgs(location.ID.String(), "Lab", "second floor", location.CreatedAt, location.UpdatedAt)

					if tc.execErr != nil {
						expectation.WillReturnError(tc.execErr)

						return
					}

					expectation.WillReturnResult(pgxmock.NewResult("INSERT", 1))
				},
				func(t *testing.T, repo *repos.LocationsRepository) {
					err := repo.Create(context.Background(), location)

					if tc.expectedErr != nil {
						require.ErrorIs(t, err, tc.expectedErr)

						return
					}

					require.NoError(t, err)
				},
			)
		})
	}
}

func TestLocationsRepository_FetchByID(t *testing.T) {
	t.Parallel()

	const selectSQL = `SELECT id, name, description, created_at, updated_at FROM locations WHERE id = $1 LIMIT 1`

	id := model.NewLocationID()
	now := time.Now().UTC()

	t.Run("returns location", func(t *testing.T) {
		runRepoTest(t, newLocationsRepo,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
					WithArgs(id.String()).
					WillReturnRows(pgxmock.NewRows(locationColumns).AddRow(id.String(), "Lab", "", now, now))
			},
			func(t *testing.T, repo *repos.LocationsRepository) {
				location, err := repo.FetchByID(context.Background(), id)
				require.NoError(t, err)
				require.Equal(t, id, location.ID)
				require.Equal(t, "Lab", location.Name)
			},
		)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		runRepoTest(t, newLocationsRepo,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
					WithArgs(id.String()).
					WillReturnRows(pgxmock.NewRows(locationColumns))
			},
			func(t *testing.T, repo *repos.LocationsRepository) {
				_, err := repo.FetchByID(context.Background(), id)
				require.ErrorIs(t, err, model.ErrLocationNotFound)
			},
		)
	})
}

func TestLocationsRepository_FetchByName(t *testing.T) {
	runRepoTest(t, newLocationsRepo,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(regexp.QuoteMeta(
				`SELECT id, name, description, created_at, updated_at FROM locations WHERE name = $1 LIMIT 1`,
			)).
				WithArgs("Nowhere").
				WillReturnRows(pgxmock.NewRows(locationColumns))
		},
		func(t *testing.T, repo *repos.LocationsRepository) {
			location, err := repo.FetchByName(context.Background(), "Nowhere")
			require.NoError(t, err)
			require.Nil(t, location)
		},
	)
}

func TestLocationsRepository_List(t *testing.T) {
	now := time.Now().UTC()
	first, second := model.NewLocationID(), model.NewLocationID()

	runRepoTest(t, newLocationsRepo,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(regexp.QuoteMeta(
				`SELECT id, name, description, created_at, updated_at FROM locations ORDER BY name, id`,
			)).
				WillReturnRows(pgxmock.NewRows(locationColumns).
					AddRow(first.String(), "A", "", now, now).
					AddRow(second.String(), "B", "rack", now, now))
		},
		func(t *testing.T, repo *repos.LocationsRepository) {
			locations, err := repo.List(context.Background())
			require.NoError(t, err)
			require.Len(t, locations, 2)
			require.Equal(t, first, locations[0].ID)
			require.Equal(t, "rack", locations[1].Description)
		},
	)
}

func TestLocationsRepository_Update(t *testing.T) {
	t.Parallel()

	const updateSQL = `UPDATE locations SET name = $1, description = $2, updated_at = $3 WHERE id = $4`

	cases := []struct {
		name        string
		rows        int64
		execErr     error
		expectedErr error
	}{
		{name: "updates row", rows: 1},
		{name: "no row is not found", rows: 0, expectedErr: model.ErrLocationNotFound},
		{name: "unique violation is a duplicate name", execErr: pgError("23505"), expectedErr: model.ErrDuplicateLocationName},
	}

	for _, tc := range cases {
		location, err := model.NewLocation("Lab", "")
		require.NoError(t, err)

		t.Run(tc.name, func(t *testing.T) {
			runRepoTest(t, newLocationsRepo,
				func(mock pgxmock.PgxPoolIface) {
					expectation := mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
						WithArgs("Lab", "", location.UpdatedAt, location.ID.String())

					if tc.execErr != nil {
						expectation.WillReturnError(tc.execErr)

						return
					}

					expectation.WillReturnResult(pgxmock.NewResult("UPDATE", tc.rows))
				},
				func(t *testing.T, repo *repos.LocationsRepository) {
					err := repo.Update(context.Background(), location)

					if tc.expectedErr != nil {
						require.ErrorIs(t, err, tc.expectedErr)

						return
					}

					require.NoError(t, err)
				},
			)
		})
	}
}

func TestLocationsRepository_Delete(t *testing.T) {
	id := model.NewLocationID()

	runRepoTest(t, newLocationsRepo,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM locations WHERE id = $1`)).
				WithArgs(id.String()).
				WillReturnResult(pgxmock.NewResult("DELETE", 0))
		},
		func(t *testing.T, repo *repos.LocationsRepository) {
			require.ErrorIs(t, repo.Delete(context.Background(), id), model.ErrLocationNotFound)
		},
	)
}

func TestLocationsRepository_Exists(t *testing.T) {
	id := model.NewLocationID()

	runRepoTest(t, newLocationsRepo,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS( SELECT 1 FROM locations WHERE id = $1 )`)).
				WithArgs(id.String()).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		},
		func(t *testing.T, repo *repos.LocationsRepository) {
			exists, err := repo.Exists(context.Background(), id)
			require.NoError(t, err)
			require.True(t, exists)
		},
	)
}
