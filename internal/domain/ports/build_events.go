package ports

import (
	"context"

	"linenotify/internal/domain/model"
)

// BuildEventHandler consumes finished-build events. The returned value is the
// "continue the build" signal.
type BuildEventHandler interface {
	Perform(ctx context.Context, event model.BuildEvent) bool
}

// PolicyResolver returns the notification policy configured for a project.
type PolicyResolver interface {
	PolicyFor(project string) model.PolicyConfig
}
