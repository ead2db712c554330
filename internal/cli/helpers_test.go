package cli

import (
	"testing"

	"github.com/spf13/viper"
)

// isolate gives the test a fresh config home and resets package-level flag state.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	viper.Reset()
	cfgFile = ""
	jsonOut = false
	quiet = false
	verbose = false

	t.Cleanup(viper.Reset)

	return dir
}
