package ports

import (
	"context"

	"linenotify/internal/domain/model"
)

// Notifier delivers a rendered message using a bearer token. Failures are
// reported in the returned DeliveryResult, never as a panic or error.
type Notifier interface {
	Deliver(ctx context.Context, token, message string) model.DeliveryResult
}
