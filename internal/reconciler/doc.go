// Package reconciler implements the wallpaper theme state machine.
//
// A run snapshots the managed directories once, resolves a dark/light
// candidate conflict by relocating the light candidate to the overflow slot,
// and promotes the remaining candidate to the active slot. An already-active
// theme is never disturbed: when it coexists with candidates the run warns
// and does nothing.
//
// Key responsibilities:
//   - Snapshot directory presence into an explicit state value
//   - Derive a deterministic plan (at most two renames) from that state
//   - Refuse to overwrite: every move target is re-checked before renaming
//   - Fail fast on elevated privileges or a missing base directory
package reconciler
