package runtime

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/architeacher/inventory/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates service context with default values", func(t *testing.T) {
		t.Parallel()

		serviceCtx := New()

		require.NotNil(t, serviceCtx)
		require.NotNil(t, serviceCtx.shutdownChannel)
		require.Nil(t, serviceCtx.deps)
		require.Nil(t, serviceCtx.serverReady)
		require.Empty(t, serviceCtx.dependencyOpts)
	})

	t.Run("creates service context with options", func(t *testing.T) {
		t.Parallel()

		ch := make(chan os.Signal, 1)
		serviceCtx := New(
			WithServiceTermination(ch),
			WithWaitingForServer(),
			WithDependencyOptions(func(*dependencies) error { return nil }),
		)

		require.NotNil(t, serviceCtx)
		require.Equal(t, ch, serviceCtx.shutdownChannel)
		require.NotNil(t, serviceCtx.serverReady)
		require.Len(t, serviceCtx.dependencyOpts, 1)
	})
}

func TestCleanupRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	var order []string

	deps := &dependencies{}
	deps.infra.logger = logger.NewTestLogger()

	for _, name := range []string{"tracer", "postgres", "keydb"} {
		deps.onCleanup(name, func(context.Context) error {
			order = append(order, name)

			if name == "postgres" {
				return errors.New("already closed")
			}

			return nil
		})
	}

	deps.cleanup(context.Background())

	require.Equal(t, []string{"keydb", "postgres", "tracer"}, order)
	require.Empty(t, deps.cleanupFuncs)
}
