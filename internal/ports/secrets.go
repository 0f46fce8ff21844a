package ports

import (
	"context"

	"github.com/hashicorp/vault/api"
)

type SecretsRepository interface {
	SetToken(token string)

	// GetSecrets reads a KV v2 secret. It returns nil, nil when the path holds nothing.
	GetSecrets(ctx context.Context, path string) (*api.KVSecret, error)
}
