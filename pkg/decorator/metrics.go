package decorator

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/inventory/pkg/metrics"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	defer func() {
		record(ctx, d.client, "commands", actionName(cmd), start, err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	start := time.Now()

	defer func() {
		record(ctx, d.client, "queries", actionName(query), start, err)
	}()

	return d.base.Execute(ctx, query)
}

func record(ctx context.Context, client metrics.Client, kind, action string, start time.Time, err error) {
	if client == nil {
		return
	}

	client.Observe(ctx, fmt.Sprintf("%s.%s.duration", kind, action), time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	client.Inc(ctx, fmt.Sprintf("%s.%s.%s", kind, action, outcome), 1)
}
