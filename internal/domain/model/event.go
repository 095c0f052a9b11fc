package model

import "io"

// BuildEvent is one "build finished" notification from a build host.
type BuildEvent struct {
	Outcome BuildOutcome
	// PreviousResult is empty when there is no previous build.
	PreviousResult Result
	Policy         PolicyConfig
	// Console receives the human-readable status lines. May be nil.
	Console io.Writer
}
