package reconciler

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/duskswap/internal/config"
	"github.com/danieljhkim/duskswap/internal/fsops"
)

// Reconciler performs the two-phase reconcile over the managed directories.
type Reconciler struct {
	fs    fsops.FS
	paths config.Paths

	// euid is the effective-UID source, overridable in tests.
	euid func() int
}

// New creates a Reconciler backed by fs for the given paths.
func New(fs fsops.FS, paths config.Paths) *Reconciler {
	return &Reconciler{
		fs:    fs,
		paths: paths,
		euid:  os.Geteuid,
	}
}

// Reconcile runs one pass over the managed directories: resolve a candidate
// conflict, then promote the remaining candidate to the active slot. Each
// phase performs at most one rename. Fatal conditions (elevated privileges,
// missing base directory, occupied overflow slot, failed rename) return an
// error; the benign no-op states succeed with warnings in the result.
func (r *Reconciler) Reconcile(ctx context.Context, req *ReconcileRequest) (*ReconcileResult, error) {
	if err := r.preflight(); err != nil {
		return nil, err
	}

	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	plan, err := r.plan(snap)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{
		Before:   snap,
		Moves:    plan.moves,
		Outcome:  plan.outcome,
		Warnings: plan.warnings,
		DryRun:   req.DryRun,
	}

	if req.DryRun {
		return result, nil
	}

	for _, mv := range plan.moves {
		if err := r.move(mv); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Status reports the current state and the plan a reconcile would execute.
// It never mutates the filesystem. An occupied overflow slot is reported as
// a blocked outcome rather than an error.
func (r *Reconciler) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	exists, err := r.fs.Exists(r.paths.Base)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", r.paths.Base, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBaseMissing, r.paths.Base)
	}

	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		Base:  r.paths.Base,
		State: snap,
	}

	plan, err := r.plan(snap)
	if err != nil {
		if errors.Is(err, ErrOverflowOccupied) {
			result.Outcome = OutcomeBlocked
			result.Warnings = append(result.Warnings, err.Error())
			return result, nil
		}
		return nil, err
	}

	result.Outcome = plan.outcome
	result.Pending = plan.moves
	result.Warnings = plan.warnings
	return result, nil
}

// preflight enforces the fail-fast preconditions. No side effects.
func (r *Reconciler) preflight() error {
	if r.euid() == 0 {
		return ErrElevated
	}

	exists, err := r.fs.Exists(r.paths.Base)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", r.paths.Base, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBaseMissing, r.paths.Base)
	}

	return nil
}

// snapshot stats each managed directory exactly once.
func (r *Reconciler) snapshot() (Snapshot, error) {
	var snap Snapshot

	checks := []struct {
		path string
		dst  *bool
	}{
		{r.paths.Dark, &snap.Dark},
		{r.paths.Light, &snap.Light},
		{r.paths.Active, &snap.Active},
		{r.paths.Overflow, &snap.Overflow},
	}

	for _, c := range checks {
		exists, err := r.fs.Exists(c.path)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to check %s: %w", c.path, err)
		}
		*c.dst = exists
	}

	return snap, nil
}

// reconcilePlan is the derived set of moves for one run.
type reconcilePlan struct {
	moves    []Move
	outcome  Outcome
	warnings []string
}

// plan derives the moves for a run from a snapshot.
//
// An already-active theme wins: with the active slot present the run never
// moves anything, even when both candidates are still around. Otherwise a
// dark/light conflict is resolved by relocating light to the overflow slot,
// and the remaining candidate is promoted, dark taking priority whenever
// both are eligible.
func (r *Reconciler) plan(snap Snapshot) (*reconcilePlan, error) {
	p := &reconcilePlan{}

	if snap.Active {
		if snap.AnyCandidate() {
			p.outcome = OutcomeAmbiguous
			p.warnings = append(p.warnings, fmt.Sprintf(
				"active theme already set at %s; not guessing between it and the remaining candidates", r.paths.Active))
		} else {
			p.outcome = OutcomeSettled
		}
		return p, nil
	}

	dark, light := snap.Dark, snap.Light

	// Phase 1: conflict resolution.
	if snap.BothCandidates() {
		if snap.Overflow {
			return nil, fmt.Errorf("%w: %s", ErrOverflowOccupied, r.paths.Overflow)
		}
		p.moves = append(p.moves, Move{Kind: MoveRelocate, From: r.paths.Light, To: r.paths.Overflow})
		light = false
	}

	// Phase 2: activation.
	switch {
	case dark:
		p.moves = append(p.moves, Move{Kind: MovePromote, From: r.paths.Dark, To: r.paths.Active})
		p.outcome = OutcomePromoted
	case light:
		p.moves = append(p.moves, Move{Kind: MovePromote, From: r.paths.Light, To: r.paths.Active})
		p.outcome = OutcomePromoted
	default:
		p.outcome = OutcomeEmpty
		p.warnings = append(p.warnings, "no theme candidates found; nothing to do")
	}

	return p, nil
}

// move re-checks the destination immediately before renaming; the reconciler
// never overwrites an existing directory.
func (r *Reconciler) move(mv Move) error {
	exists, err := r.fs.Exists(mv.To)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", mv.To, err)
	}
	if exists {
		if mv.Kind == MoveRelocate {
			return fmt.Errorf("%w: %s", ErrOverflowOccupied, mv.To)
		}
		return fmt.Errorf("refusing to overwrite %s", mv.To)
	}

	if err := r.fs.Rename(mv.From, mv.To); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", mv.From, mv.To, err)
	}

	return nil
}
