package signals

import "fmt"

// InvalidScopeError indicates a caller-supplied scope that cannot be
// resolved (for example a student ID combined with a conflicting class ID).
// Caller-input errors are surfaced immediately and never retried.
type InvalidScopeError struct {
	Reason string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid scope: %s", e.Reason)
}

// Kind returns the stable error kind for callers that render structured
// failures.
func (e *InvalidScopeError) Kind() string { return "invalid_scope" }
