package reconciler

// ReconcileRequest represents a request to reconcile the theme directories.
type ReconcileRequest struct {
	// DryRun plans moves without renaming anything.
	// Preconditions and safety checks still run.
	DryRun bool
}

// StatusRequest represents a request for the current theme state.
type StatusRequest struct{}

// MoveKind distinguishes the two renames a run may perform.
type MoveKind string

const (
	// MoveRelocate moves the light candidate to the overflow slot.
	MoveRelocate MoveKind = "relocate"

	// MovePromote moves a candidate to the active slot.
	MovePromote MoveKind = "promote"
)

// Move is a single directory rename.
type Move struct {
	Kind MoveKind `json:"kind"`
	From string   `json:"from"`
	To   string   `json:"to"`
}

// Outcome tags how a run ended, or how it would end.
type Outcome string

const (
	// OutcomePromoted means a candidate was renamed to the active slot.
	OutcomePromoted Outcome = "promoted"

	// OutcomeAmbiguous means the active slot coexists with at least one
	// candidate; the run warned and moved nothing.
	OutcomeAmbiguous Outcome = "ambiguous"

	// OutcomeSettled means the active slot exists and no candidates remain.
	OutcomeSettled Outcome = "settled"

	// OutcomeEmpty means neither a candidate nor the active slot exists.
	OutcomeEmpty Outcome = "empty"

	// OutcomeBlocked means a reconcile would abort on the overflow safety
	// check. Only reported by Status; Reconcile fails instead.
	OutcomeBlocked Outcome = "blocked"
)

// ReconcileResult describes what a run did (or, for a dry run, would do).
type ReconcileResult struct {
	// Before is the directory state at the start of the run.
	Before Snapshot `json:"before"`

	// Moves are the renames performed, in order.
	Moves []Move `json:"moves"`

	// Outcome tags how the run ended.
	Outcome Outcome `json:"outcome"`

	// Warnings are operator-facing messages for the benign no-op states.
	Warnings []string `json:"warnings,omitempty"`

	// DryRun reports whether the moves were planned but not executed.
	DryRun bool `json:"dry_run,omitempty"`
}

// StatusResult describes the current theme state without mutating it.
type StatusResult struct {
	// Base is the managed wallpaper directory.
	Base string `json:"base"`

	// State is the current directory presence.
	State Snapshot `json:"state"`

	// Outcome is what a reconcile run would do from this state.
	Outcome Outcome `json:"outcome"`

	// Pending are the moves a reconcile would perform.
	Pending []Move `json:"pending_moves,omitempty"`

	// Warnings are the messages a reconcile would emit.
	Warnings []string `json:"warnings,omitempty"`
}
