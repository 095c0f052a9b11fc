package ports

import "context"

// LogSource reads the trailing lines of a build's console output.
type LogSource interface {
	LogTail(ctx context.Context, maxLines int) ([]string, error)
}
