package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"
)

// VaultRepository reads KV v2 secrets under a single mount.
type VaultRepository struct {
	client    *api.Client
	mountPath string
}

func NewVaultRepository(client *api.Client, mountPath string) *VaultRepository {
	return &VaultRepository{
		client:    client,
		mountPath: mountPath,
	}
}

func (r *VaultRepository) SetToken(token string) {
	r.client.SetToken(token)
}

func (r *VaultRepository) GetSecrets(ctx context.Context, path string) (*api.KVSecret, error) {
	secret, err := r.client.KVv2(r.mountPath).Get(ctx, path)
	if err != nil {
		if errors.Is(err, api.ErrSecretNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading secret %s/%s: %w", r.mountPath, path, err)
	}

	return secret, nil
}
