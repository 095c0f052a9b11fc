// Package policy decides whether a finished build should produce a notification.
package policy

import (
	"linenotify/internal/domain/model"
	"linenotify/internal/errors"
)

// ParseSendType resolves a configured send type name. Matching is exact.
func ParseSendType(name string) (model.SendType, error) {
	for _, st := range model.SendTypes {
		if string(st) == name {
			return st, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownSendType, "%q", name)
}

// Decide applies the send type's own rule to the current result.
func Decide(sendType model.SendType, current model.Result) bool {
	switch sendType {
	case model.SendAlways:
		return true
	case model.SendOnlySuccess:
		return current == model.ResultSuccess
	case model.SendOnlyFailure:
		return current == model.ResultFailure
	default:
		return false
	}
}

// StatusChanged reports whether previous is present and differs from current.
func StatusChanged(current, previous model.Result) bool {
	return previous != "" && previous != current
}

// ShouldSend combines the send type rule with the status-change override.
// The override only turns a "no" into a "yes"; an empty previous result
// leaves the base decision untouched. Callers reject absent current results
// before asking.
func ShouldSend(sendType model.SendType, current, previous model.Result, notifyOnStatusChange bool) bool {
	if Decide(sendType, current) {
		return true
	}
	return notifyOnStatusChange && StatusChanged(current, previous)
}
