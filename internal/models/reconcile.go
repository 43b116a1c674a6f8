package models

// SyncAction is a single entry of a reconciliation plan.
type SyncAction string

const (
	SyncActionAdd    SyncAction = "add"
	SyncActionRemove SyncAction = "remove"
)

// SyncFailure records one plan entry that could not be applied. The rest of
// the plan is still attempted; callers retry just the failed subset.
type SyncFailure struct {
	Action SyncAction
	Key    DocumentKey
	Err    error
}

// SyncReport summarizes a reconciliation pass over the personnel documents
// and the medical records collection.
//
// Updated is carried for API compatibility with the original dashboard
// payload but no code path increments it.
type SyncReport struct {
	Added    int
	Removed  int
	Updated  int
	Failures []SyncFailure
}

// Converged reports whether the pass applied its whole plan.
func (r SyncReport) Converged() bool {
	return len(r.Failures) == 0
}
