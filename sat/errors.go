package sat

import "errors"

// ErrMissingPlaceholder is returned at configuration time by
// NewCommandSolver when the given command template does not mention both
// %I and %O, per spec.md §6's requirement that their absence is an error
// at configuration time rather than at invocation time.
var ErrMissingPlaceholder = errors.New("sat: command template missing %I or %O placeholder")

// ErrEmptyTemplate is returned when the command template has no content
// once placeholders are stripped, leaving nothing to execute.
var ErrEmptyTemplate = errors.New("sat: command template is empty")

// ErrSolverFailed wraps a non-zero exit or unreadable output from an
// external solver invocation.
var ErrSolverFailed = errors.New("sat: external solver invocation failed")

// ErrMalformedModel is returned when an external solver's output does not
// parse as a DIMACS solution.
var ErrMalformedModel = errors.New("sat: malformed solver output")
