package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/services"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService(t *testing.T) {
	t.Parallel()

	healthy := pingerFunc(func(context.Context) error { return nil })
	broken := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
	slow := pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()

		return ctx.Err()
	})

	cases := []struct {
		name         string
		dependencies map[string]ports.Pinger
		readiness    model.HealthStatus
		health       model.HealthStatus
		failing      []string
	}{
		{
			name:         "all dependencies up",
			dependencies: map[string]ports.Pinger{"postgres": healthy, "keydb": healthy},
			readiness:    model.HealthStatusOK,
			health:       model.HealthStatusOK,
		},
		{
			name:         "optional dependency down degrades",
			dependencies: map[string]ports.Pinger{"postgres": healthy, "keydb": broken},
			readiness:    model.HealthStatusDown,
			health:       model.HealthStatusDegraded,
			failing:      []string{"keydb"},
		},
		{
			name:         "critical timeout is down",
			dependencies: map[string]ports.Pinger{"postgres": slow},
			readiness:    model.HealthStatusDown,
			health:       model.HealthStatusDown,
			failing:      []string{"postgres"},
		},
		{
			name:         "no dependencies",
			dependencies: map[string]ports.Pinger{},
			readiness:    model.HealthStatusOK,
			health:       model.HealthStatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := services.NewHealthService(
				model.VersionInfo{API: "v1", Build: "1.2.3"},
				50*time.Millisecond,
				tc.dependencies,
				"postgres",
			)

			liveness, err := svc.Liveness(context.Background())
			require.NoError(t, err)
			require.Equal(t, model.HealthStatusOK, liveness.Status)
			require.Equal(t, "1.2.3", liveness.Version)

			readiness, err := svc.Readiness(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.readiness, readiness.Status)
			require.Len(t, readiness.Checks, len(tc.dependencies))

			report, err := svc.Health(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.health, report.Status)
			require.NotEmpty(t, report.Version.Go)
			require.NotZero(t, report.System.CPUCores)

			for _, name := range tc.failing {
				require.Equal(t, model.DependencyStatusDown, report.Checks[name].Status)
				require.NotEmpty(t, report.Checks[name].Message)
			}
		})
	}
}
