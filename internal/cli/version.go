package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/state"
)

// VersionInfo describes the build and the services it talks to.
type VersionInfo struct {
	Version   string        `json:"version"`
	Commit    string        `json:"commit"`
	Date      string        `json:"date"`
	BuiltBy   string        `json:"built_by"`
	UserAgent string        `json:"user_agent"`
	Services  []ServiceInfo `json:"services"`
}

// ServiceInfo is a remote endpoint used for lookups.
type ServiceInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date, builtBy string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print build information and the lookup endpoints in effect.

Endpoints reflect the config file and any MCLOOKUP_* overrides, so this
is a quick way to check where lookups will be sent.`,
		Example: `  # Display version information
  mclookup version

  # Output in JSON format
  mclookup version --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := effectiveConfig(cmd.Context())
			return printVersion(cmd.OutOrStdout(), newVersionInfo(version, commit, date, builtBy, cfg))
		},
	}

	return cmd
}

// effectiveConfig returns the loaded config, or defaults when it cannot be read.
func effectiveConfig(ctx context.Context) *state.Config {
	cfg, err := loadSettings(ctx)
	if err != nil {
		logger.Warn("showing default endpoints", "error", err)
		return state.DefaultConfig()
	}
	return cfg
}

func newVersionInfo(version, commit, date, builtBy string, cfg *state.Config) VersionInfo {
	if cfg == nil {
		cfg = state.DefaultConfig()
	}

	userAgent := cfg.API.UserAgent
	if userAgent == "" {
		userAgent = playerdb.UserAgent
	}

	return VersionInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuiltBy:   builtBy,
		UserAgent: userAgent,
		Services: []ServiceInfo{
			{Name: "PlayerDB", URL: cfg.API.PlayerDBURL},
			{Name: "Ashcon", URL: cfg.API.AshconURL},
			{Name: "Skin fallback", URL: cfg.API.SkinFallbackURL},
		},
	}
}

// printVersion prints version information in the appropriate format
func printVersion(w io.Writer, info VersionInfo) error {
	if IsJSONOutput() {
		return printVersionJSON(w, info)
	}

	return printVersionText(w, info)
}

// printVersionJSON prints version information in JSON format
func printVersionJSON(w io.Writer, info VersionInfo) error {
	output := struct {
		Status string      `json:"status"`
		Data   VersionInfo `json:"data"`
	}{
		Status: "success",
		Data:   info,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}

	return nil
}

// printVersionText prints version information in human-readable format
func printVersionText(w io.Writer, info VersionInfo) error {
	lines := []string{
		fmt.Sprintf("mclookup version %s", info.Version),
		fmt.Sprintf("Commit: %s", info.Commit),
		fmt.Sprintf("Built: %s", info.Date),
		fmt.Sprintf("Built by: %s", info.BuiltBy),
		fmt.Sprintf("User agent: %s", info.UserAgent),
	}
	for _, svc := range info.Services {
		lines = append(lines, fmt.Sprintf("%s: %s", svc.Name, svc.URL))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write version: %w", err)
		}
	}

	return nil
}
