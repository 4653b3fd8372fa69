package cmd

import (
	"github.com/chris-regnier/sunspot/internal/shell"
	"github.com/spf13/cobra"
)

// invalidateCachePostRun is a PostRunE hook that invalidates the prompt cache
// after commands that write a record.
func invalidateCachePostRun(cmd *cobra.Command, args []string) error {
	invalidateCache()
	return nil
}

// invalidateCache removes the prompt cache. Failures are ignored so a
// successful write is never reported as an error.
func invalidateCache() {
	if appConfig == nil {
		return
	}
	_ = shell.InvalidateCache(appConfig.DataDir)
}
