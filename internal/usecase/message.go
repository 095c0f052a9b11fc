package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// DefaultLogTailLines is how many console lines a notification carries.
const DefaultLogTailLines = 10

// BuildMessage renders the notification text for a finished build.
// Values are interpolated as-is; LINE special characters are not escaped.
func BuildMessage(outcome model.BuildOutcome) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s][#%d]Build result : %s", outcome.ProjectName, outcome.BuildNumber, outcome.Result))
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join(tailLines(outcome.LogTail, DefaultLogTailLines), "\n"))
	builder.WriteString("\n\n")
	builder.WriteString(outcome.URL)
	builder.WriteString(strconv.Itoa(outcome.BuildNumber))
	return builder.String()
}

// ReadLogTail fetches up to maxLines trailing console lines. A read failure
// yields an empty tail; it is logged and never returned.
func ReadLogTail(ctx context.Context, src ports.LogSource, maxLines int, logger ports.Logger) []string {
	if src == nil || maxLines <= 0 {
		return nil
	}

	lines, err := src.LogTail(ctx, maxLines)
	if err != nil {
		if logger != nil {
			logger.Debug(ctx, "build log unavailable, sending without it", "error", err)
		}
		return nil
	}

	return tailLines(lines, maxLines)
}

func tailLines(lines []string, limit int) []string {
	if limit <= 0 || len(lines) <= limit {
		return lines
	}
	return lines[len(lines)-limit:]
}
