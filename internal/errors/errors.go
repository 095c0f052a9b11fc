// Package errors defines the sentinel errors shared across linenotify.
//
// Notification-path errors are never fatal to a build: callers log them and
// degrade (skip the send, or substitute empty data). They exist so that the
// degraded paths can still be told apart with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSendType indicates a configured send type outside the known set.
	ErrUnknownSendType = errors.New("unknown send type")

	// ErrResultUnavailable indicates the build result could not be read.
	ErrResultUnavailable = errors.New("build result unavailable")

	// ErrTokenNotFound indicates no credential is registered under the requested name.
	ErrTokenNotFound = errors.New("token not found")

	// ErrDelivery indicates the messaging API could not be reached or rejected the request.
	ErrDelivery = errors.New("delivery failed")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrAlreadyRunning indicates another daemon instance holds the lock file.
	ErrAlreadyRunning = errors.New("daemon already running")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap adds context to err. It returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to err. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
