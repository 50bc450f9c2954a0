package models

// ExecutionResult reports what happened to a single change request. Errors
// and declined confirmations surface here rather than as panics or thrown
// errors, so callers can always inspect why a change did not apply.
type ExecutionResult struct {
	Applied            bool
	Message            string
	Conflicts          []Conflict
	SkippedAsDuplicate bool
}
