package usecase

import (
	"context"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// TokenRegistry resolves configured token names to credentials.
type TokenRegistry struct {
	store  ports.CredentialStore
	logger ports.Logger
}

// NewTokenRegistry constructs a TokenRegistry over store.
func NewTokenRegistry(store ports.CredentialStore, logger ports.Logger) *TokenRegistry {
	return &TokenRegistry{store: store, logger: logger}
}

// Resolve returns the first credential whose name equals name exactly.
// A missing name, or a store that cannot be read, reports false.
func (r *TokenRegistry) Resolve(ctx context.Context, name string) (model.Credential, bool) {
	if r == nil || r.store == nil {
		return model.Credential{}, false
	}

	credentials, err := r.store.ListCredentials(ctx)
	if err != nil {
		if r.logger != nil {
			r.logger.Error(ctx, "failed to list credentials", "error", err)
		}
		return model.Credential{}, false
	}

	for _, c := range credentials {
		if c.Name == name {
			return c, true
		}
	}
	return model.Credential{}, false
}
