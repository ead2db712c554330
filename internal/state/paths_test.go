package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name        string
		envSetup    func(t *testing.T) func()
		wantContain string
	}{
		{
			name: "uses XDG_CONFIG_HOME when set",
			envSetup: func(t *testing.T) func() {
				old := os.Getenv("XDG_CONFIG_HOME")
				_ = os.Setenv("XDG_CONFIG_HOME", "/tmp/test-config")
				return func() { _ = os.Setenv("XDG_CONFIG_HOME", old) }
			},
			wantContain: "/tmp/test-config/mclookup",
		},
		{
			name: "uses ~/.config when XDG_CONFIG_HOME not set",
			envSetup: func(t *testing.T) func() {
				old := os.Getenv("XDG_CONFIG_HOME")
				_ = os.Unsetenv("XDG_CONFIG_HOME")
				return func() { _ = os.Setenv("XDG_CONFIG_HOME", old) }
			},
			wantContain: ".config/mclookup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := tt.envSetup(t)
			defer cleanup()

			dir, err := GetConfigDir()
			require.NoError(t, err)
			assert.Contains(t, dir, tt.wantContain)
		})
	}
}

func TestGetFilePaths(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "mclookup", "config.yaml"), configPath)

	prefsPath, err := GetPrefsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "mclookup", "prefs.yaml"), prefsPath)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde alone", in: "~", want: home},
		{name: "tilde prefix", in: "~/Downloads", want: filepath.Join(home, "Downloads")},
		{name: "absolute path", in: "/srv/skins", want: "/srv/skins"},
		{name: "relative path", in: "skins", want: "skins"},
		{name: "tilde user form is untouched", in: "~bob/skins", want: "~bob/skins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitDirs(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	require.NoError(t, InitDirs())

	info, err := os.Stat(filepath.Join(tmpDir, "mclookup"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
