package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/inventory/internal/ports"
	"github.com/cenkalti/backoff/v5"
)

const (
	secretUsernameKey = "username"
	secretPasswordKey = "password"
	secretHostKey     = "host"
)

var ErrSecretNotFound = errors.New("database secret not found")

// ApplyDatabaseSecrets overwrites the database credentials with the values stored at
// SecretsStorage.DatabasePath. Keys missing from the secret keep their env values.
func ApplyDatabaseSecrets(ctx context.Context, cfg *ServiceConfig, secrets ports.SecretsRepository) error {
	if cfg.SecretsStorage.Token != "" {
		secrets.SetToken(cfg.SecretsStorage.Token)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.SecretsStorage.Timeout)
	defer cancel()

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 250 * time.Millisecond
	expBackoff.MaxInterval = 2 * time.Second

	data, err := backoff.Retry(
		ctx,
		func() (map[string]any, error) {
			secret, err := secrets.GetSecrets(ctx, cfg.SecretsStorage.DatabasePath)
			if err != nil {
				return nil, err
			}

			if secret == nil {
				return nil, backoff.Permanent(ErrSecretNotFound)
			}

			return secret.Data, nil
		},
		backoff.WithMaxTries(uint(max(cfg.SecretsStorage.MaxRetries, 0))+1),
		backoff.WithBackOff(expBackoff),
	)
	if err != nil {
		return fmt.Errorf("loading database secrets from %s: %w", cfg.SecretsStorage.DatabasePath, err)
	}

	if value, ok := data[secretUsernameKey].(string); ok && value != "" {
		cfg.Database.Username = value
	}

	if value, ok := data[secretPasswordKey].(string); ok && value != "" {
		cfg.Database.Password = value
	}

	if value, ok := data[secretHostKey].(string); ok && value != "" {
		cfg.Database.Host = value
	}

	return nil
}
