package fundoverlap

import (
	"fmt"
	"slices"
)

// Result is the outcome of a single command line: either a success with
// zero or more output lines, or a failure with a message.
type Result struct {
	failed  bool
	outputs []string
	err     string
}

// Success returns a successful result printing outputs.
func Success(outputs ...string) Result {
	return Result{outputs: slices.Clone(outputs)}
}

// Failure returns a failed result with message msg.
func Failure(msg string) Result {
	return Result{failed: true, err: msg}
}

// OK reports whether the command succeeded.
func (r Result) OK() bool { return !r.failed }

// Outputs returns a copy of the output lines. Failures have none.
func (r Result) Outputs() []string { return slices.Clone(r.outputs) }

// Err returns the failure message, or "" on success.
func (r Result) Err() string { return r.err }

// Equal reports whether r and s are the same outcome.
func (r Result) Equal(s Result) bool {
	return r.failed == s.failed && r.err == s.err && slices.Equal(r.outputs, s.outputs)
}

func (r Result) String() string {
	if r.failed {
		return fmt.Sprintf("failure(%s)", r.err)
	}
	return fmt.Sprintf("success%q", r.outputs)
}
