package state

import (
	"os"
	"testing"
)

// useTempConfigHome points XDG_CONFIG_HOME at a fresh temp dir for the test.
func useTempConfigHome(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	old, had := os.LookupEnv("XDG_CONFIG_HOME")
	_ = os.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	})

	return tmpDir
}
