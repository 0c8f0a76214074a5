package reconciler

import "errors"

var (
	// ErrElevated indicates the tool was invoked with root privileges.
	ErrElevated = errors.New("refusing to run with elevated privileges")

	// ErrBaseMissing indicates the managed wallpaper directory does not exist.
	ErrBaseMissing = errors.New("wallpaper directory does not exist")

	// ErrOverflowOccupied indicates the overflow destination already exists,
	// so relocating the light candidate would clobber it.
	ErrOverflowOccupied = errors.New("overflow destination already exists")
)
