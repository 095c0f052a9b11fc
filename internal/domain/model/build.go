package model

import "strings"

// Result is the terminal status of one build. The zero value means the
// result is absent.
type Result string

const (
	ResultSuccess  Result = "SUCCESS"
	ResultFailure  Result = "FAILURE"
	ResultUnstable Result = "UNSTABLE"
	ResultAborted  Result = "ABORTED"
	ResultNotBuilt Result = "NOT_BUILT"
	ResultUnknown  Result = "UNKNOWN"
)

// ParseResult maps a build host's result name onto a Result. Empty input
// stays absent; anything unrecognised becomes ResultUnknown.
func ParseResult(name string) Result {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	switch r := Result(name); r {
	case ResultSuccess, ResultFailure, ResultUnstable, ResultAborted, ResultNotBuilt:
		return r
	default:
		return ResultUnknown
	}
}

// Known reports whether r is present and one of the concrete build results.
func (r Result) Known() bool {
	return r != "" && r != ResultUnknown
}

func (r Result) String() string {
	return string(r)
}

// BuildOutcome is a read-only snapshot of a finished build.
type BuildOutcome struct {
	Result      Result
	ProjectName string
	BuildNumber int
	URL         string
	LogTail     []string
}
