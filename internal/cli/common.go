package cli

import (
	"encoding/json"
	"os"

	"github.com/danieljhkim/duskswap/internal/config"
	"github.com/danieljhkim/duskswap/internal/fsops"
	"github.com/danieljhkim/duskswap/internal/reconciler"
)

// newReconciler creates a reconciler with real implementations of all dependencies.
func newReconciler() (*reconciler.Reconciler, error) {
	paths, err := config.Load()
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	return reconciler.New(fs, *paths), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
