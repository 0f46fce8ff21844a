// Package circuitbreaker wraps gobreaker with a typed API that degrades to a passthrough when disabled.
package circuitbreaker

import (
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("circuit breaker is half-open and saturated")
)

type (
	Config struct {
		Enabled          bool
		Name             string
		MaxRequests      uint32
		Interval         time.Duration
		Timeout          time.Duration
		FailureThreshold uint32
	}

	// StateChangeFunc is notified with the breaker name and the old and new state.
	StateChangeFunc func(name string, from, to string)

	CircuitBreaker[T any] struct {
		cb *gobreaker.CircuitBreaker[T]
	}
)

// New returns nil when cfg is disabled; Execute treats a nil breaker as a passthrough.
func New[T any](cfg Config, onStateChange StateChangeFunc) *CircuitBreaker[T] {
	if !cfg.Enabled {
		return nil
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	if onStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			onStateChange(name, from.String(), to.String())
		}
	}

	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

func (c *CircuitBreaker[T]) Name() string {
	return c.cb.Name()
}

func (c *CircuitBreaker[T]) State() string {
	return c.cb.State().String()
}

func Execute[T any](cb *CircuitBreaker[T], fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}

	result, err := cb.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		var zero T

		return zero, ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		var zero T

		return zero, ErrTooManyRequests
	}

	return result, err
}
