package reconciler

// Snapshot captures the presence of every managed directory at the start of
// a run. Planning is a pure function of this value; the filesystem is only
// consulted again immediately before each rename, to re-check the target.
type Snapshot struct {
	// Dark reports whether the dark candidate exists under the base directory.
	Dark bool `json:"dark"`

	// Light reports whether the light candidate exists under the base directory.
	Light bool `json:"light"`

	// Active reports whether the active slot exists under the base directory.
	Active bool `json:"active"`

	// Overflow reports whether the overflow slot exists outside the base directory.
	Overflow bool `json:"overflow"`
}

// BothCandidates reports whether the dark and light candidates are in conflict.
func (s Snapshot) BothCandidates() bool {
	return s.Dark && s.Light
}

// AnyCandidate reports whether at least one candidate exists.
func (s Snapshot) AnyCandidate() bool {
	return s.Dark || s.Light
}
