package usecase

import (
	"context"
	"fmt"
	"io"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/policy"
	"linenotify/internal/domain/ports"
	"linenotify/internal/errors"
)

const consolePrefix = "[LineNotifier]"

// BuildNotification decides, renders and delivers the notification for one
// finished build.
type BuildNotification struct {
	registry *TokenRegistry
	notifier ports.Notifier
	logger   ports.Logger
}

// NewBuildNotification constructs a BuildNotification use case.
func NewBuildNotification(registry *TokenRegistry, notifier ports.Notifier, logger ports.Logger) *BuildNotification {
	return &BuildNotification{
		registry: registry,
		notifier: notifier,
		logger:   logger,
	}
}

// Perform runs the notification workflow for event. Every problem along the
// way is reported to the console and the logger; the returned "continue the
// build" signal is always true.
func (b *BuildNotification) Perform(ctx context.Context, event model.BuildEvent) bool {
	console := consoleWriter{w: event.Console}
	outcome := event.Outcome
	log := []any{"project", outcome.ProjectName, "build", outcome.BuildNumber}

	sendType, err := policy.ParseSendType(event.Policy.SendType)
	if err != nil {
		console.warn("Invalid send type: %s", event.Policy.SendType)
		b.logger.Warn(ctx, "skipping notification", append(log, "error", err)...)
		return true
	}

	if !outcome.Result.Known() {
		console.warn("Build result is not available.")
		b.logger.Warn(ctx, "skipping notification, build result unavailable", append(log, "result", outcome.Result.String(), "error", errors.ErrResultUnavailable)...)
		return true
	}

	credential, ok := b.registry.Resolve(ctx, event.Policy.TokenName)
	if !ok {
		console.warn("Token does not exist: current token name is %s", event.Policy.TokenName)
		b.logger.Warn(ctx, "skipping notification, token not found", append(log, "token_name", event.Policy.TokenName, "error", errors.ErrTokenNotFound)...)
		return true
	}

	if !b.shouldSend(ctx, console, sendType, event, log) {
		b.logger.Debug(ctx, "notification not required", append(log, "send_type", string(sendType), "result", outcome.Result.String())...)
		return true
	}

	b.send(ctx, console, credential, outcome, log)
	return true
}

func (b *BuildNotification) shouldSend(ctx context.Context, console consoleWriter, sendType model.SendType, event model.BuildEvent, log []any) bool {
	current := event.Outcome.Result
	if policy.Decide(sendType, current) {
		return true
	}
	if !event.Policy.NotifyOnStatusChange {
		return false
	}

	previous := event.PreviousResult
	if previous == "" {
		console.warn("Previous build result does not exist.")
		b.logger.Debug(ctx, "no previous build to compare", log...)
		return false
	}

	if !policy.ShouldSend(sendType, current, previous, true) {
		return false
	}
	console.info("Result changed (%s > %s).", previous, current)
	b.logger.Info(ctx, "build result changed", append(log, "previous", previous.String(), "current", current.String())...)
	return true
}

func (b *BuildNotification) send(ctx context.Context, console consoleWriter, credential model.Credential, outcome model.BuildOutcome, log []any) {
	message := BuildMessage(outcome)
	console.info("Sending build result.")
	console.line(message)

	result := b.notifier.Deliver(ctx, credential.Token, message)
	log = append(log, "delivery_id", result.ID, "token_name", credential.Name, "duration", result.Duration)

	if !result.Succeeded {
		console.warn("Send error: %s", result.ErrorMessage)
		b.logger.Error(ctx, "failed to deliver notification", append(log, "status", result.StatusCode, "error", result.ErrorMessage)...)
		return
	}

	console.printf("Response: %s", result.ResponseBody)
	b.logger.Info(ctx, "notification delivered", append(log, "status", result.StatusCode)...)
}

type consoleWriter struct {
	w io.Writer
}

func (c consoleWriter) info(format string, args ...any) {
	c.line(consolePrefix + "[INFO]" + fmt.Sprintf(format, args...))
}

func (c consoleWriter) warn(format string, args ...any) {
	c.line(consolePrefix + "[WARN]" + fmt.Sprintf(format, args...))
}

func (c consoleWriter) printf(format string, args ...any) {
	c.line(consolePrefix + fmt.Sprintf(format, args...))
}

func (c consoleWriter) line(text string) {
	if c.w == nil {
		return
	}
	_, _ = fmt.Fprintln(c.w, text)
}
