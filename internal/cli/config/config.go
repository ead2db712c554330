package config

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the config command group. jsonOutput reports the global --json flag.
func NewCommand(jsonOutput func() bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and modify mclookup configuration settings.

Commands in this group allow you to view current configuration and
modify settings. Configuration is stored in
~/.config/mclookup/config.yaml by default ($XDG_CONFIG_HOME is honoured).

Any key can also be overridden for a single run through the environment,
e.g. MCLOOKUP_API_TIMEOUT=5s or MCLOOKUP_DOWNLOADS_DIRECTORY=/tmp.`,
		Example: `  # View current configuration
  mclookup config show

  # Set a configuration value
  mclookup config set api.timeout 5s

  # Get a specific value
  mclookup config get downloads.directory

  # Show configuration file path
  mclookup config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewShowCommand(jsonOutput))
	cmd.AddCommand(NewGetCommand(jsonOutput))
	cmd.AddCommand(NewSetCommand(jsonOutput))
	cmd.AddCommand(NewPathCommand(jsonOutput))

	return cmd
}
