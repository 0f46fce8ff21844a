package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/inventory/internal/infrastructure"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/pkg/circuitbreaker"
	"github.com/redis/go-redis/v9"
)

const (
	lockSuffix = ":lock"
	lockValue  = "processing"
)

// IdempotencyRepository keeps replayable responses in KeyDB. Every call goes through the
// circuit breaker, so a failing cache is skipped quickly instead of timing out per request.
type IdempotencyRepository struct {
	client  *infrastructure.KeydbClient
	breaker *circuitbreaker.CircuitBreaker[any]
}

// NewIdempotencyRepository accepts a nil breaker, which disables tripping.
func NewIdempotencyRepository(
	client *infrastructure.KeydbClient,
	breaker *circuitbreaker.CircuitBreaker[any],
) *IdempotencyRepository {
	return &IdempotencyRepository{
		client:  client,
		breaker: breaker,
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*ports.CachedResponse, error) {
	result, err := circuitbreaker.Execute(r.breaker, func() (any, error) {
		data, err := r.client.Get(ctx, key)
		if errors.Is(err, redis.Nil) {
			return []byte(nil), nil
		}

		return data, err
	})
	if err != nil {
		return nil, fmt.Errorf("getting cached response: %w", err)
	}

	data, _ := result.([]byte)
	if len(data) == 0 {
		return nil, nil
	}

	var response ports.CachedResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("unmarshalling cached response: %w", err)
	}

	return &response, nil
}

func (r *IdempotencyRepository) Set(ctx context.Context, key string, response *ports.CachedResponse, ttl time.Duration) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshalling response: %w", err)
	}

	_, err = circuitbreaker.Execute(r.breaker, func() (any, error) {
		return nil, r.client.Set(ctx, key, data, ttl)
	})
	if err != nil {
		return fmt.Errorf("setting cached response: %w", err)
	}

	return nil
}

func (r *IdempotencyRepository) SetLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := circuitbreaker.Execute(r.breaker, func() (any, error) {
		return r.client.Lock(ctx, key+lockSuffix, lockValue, ttl)
	})
	if err != nil {
		return false, fmt.Errorf("acquiring lock: %w", err)
	}

	acquired, _ := result.(bool)

	return acquired, nil
}

func (r *IdempotencyRepository) ReleaseLock(ctx context.Context, key string) error {
	_, err := circuitbreaker.Execute(r.breaker, func() (any, error) {
		return nil, r.client.Delete(ctx, key+lockSuffix)
	})
	if err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}

	return nil
}
