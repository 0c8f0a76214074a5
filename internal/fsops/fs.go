// Package fsops provides the filesystem primitives duskswap is allowed to use.
//
// The reconciler never reads, copies, or modifies directory contents; every
// mutation it performs is a single rename. All filesystem access goes through
// the FS interface so the engine can be tested against a failing filesystem.
package fsops

import "os"

// FS provides an abstraction for filesystem operations.
// All filesystem mutations in duskswap must go through this interface.
type FS interface {
	// Exists reports whether a path exists. Symlinks are not followed.
	Exists(path string) (bool, error)

	// Rename atomically moves oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Exists reports whether a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Rename atomically moves oldpath to newpath. It never falls back to a
// copy, so a cross-device move fails rather than duplicating contents.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
