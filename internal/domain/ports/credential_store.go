package ports

import (
	"context"

	"linenotify/internal/domain/model"
)

// CredentialStore is read-only access to the administrator-managed token list.
// Implementations must return a slice callers may read concurrently.
type CredentialStore interface {
	ListCredentials(ctx context.Context) ([]model.Credential, error)
}
