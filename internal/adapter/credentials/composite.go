package credentials

import (
	"context"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// CompositeStore concatenates several stores in order, so a name found in an
// earlier store shadows the same name in a later one.
type CompositeStore struct {
	logger ports.Logger
	stores []ports.CredentialStore
}

var _ ports.CredentialStore = (*CompositeStore)(nil)

// NewCompositeStore constructs a store that queries the given stores sequentially.
func NewCompositeStore(logger ports.Logger, stores ...ports.CredentialStore) *CompositeStore {
	active := make([]ports.CredentialStore, 0, len(stores))
	for _, s := range stores {
		if s != nil {
			active = append(active, s)
		}
	}
	return &CompositeStore{
		logger: logger,
		stores: active,
	}
}

// ListCredentials merges the credentials of every store. A failing store is
// logged and skipped; the first error is returned only when nothing was read.
func (c *CompositeStore) ListCredentials(ctx context.Context) ([]model.Credential, error) {
	var (
		results  []model.Credential
		firstErr error
		okCount  int
	)

	for _, store := range c.stores {
		items, err := store.ListCredentials(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Error(ctx, "credential store failed", "error", err)
			}
			continue
		}
		okCount++
		results = append(results, items...)
	}

	if okCount == 0 && firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
