package ports

import (
	"context"
	"time"
)

// CachedResponse is an HTTP response kept for idempotent replay.
type CachedResponse struct {
	StatusCode  int               `json:"status_code"`
	Headers     map[string]string `json:"headers"`
	Body        []byte            `json:"body"`
	Fingerprint string            `json:"fingerprint"`
	CreatedAt   time.Time         `json:"created_at"`
}

type IdempotencyCache interface {
	// Get returns nil, nil when nothing is cached under key.
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, response *CachedResponse, ttl time.Duration) error

	// SetLock reports false when another request already holds the lock.
	SetLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}
