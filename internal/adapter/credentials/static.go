package credentials

import (
	"context"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// StaticStore serves the token list from the configuration file.
type StaticStore struct {
	credentials []model.Credential
}

var _ ports.CredentialStore = (*StaticStore)(nil)

// NewStaticStore copies credentials so later changes by the caller are not observed.
func NewStaticStore(credentials []model.Credential) *StaticStore {
	return &StaticStore{credentials: append([]model.Credential(nil), credentials...)}
}

// ListCredentials returns the configured credentials.
func (s *StaticStore) ListCredentials(context.Context) ([]model.Credential, error) {
	return s.credentials, nil
}
