//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/fake_health_checker.go . HealthChecker

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
)

type (
	HealthChecker interface {
		Liveness(ctx context.Context) (*model.LivenessReport, error)
		Readiness(ctx context.Context) (*model.ReadinessReport, error)
		Health(ctx context.Context) (*model.HealthReport, error)
	}

	// Pinger is anything with a cheap round trip to test connectivity.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
