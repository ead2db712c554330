package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/mclookup/internal/cli/config"
	"github.com/steviee/mclookup/internal/state"
)

// EnvPrefix is the prefix for environment overrides, e.g. MCLOOKUP_API_TIMEOUT.
const EnvPrefix = "MCLOOKUP"

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mclookup",
		Short: "Look up Minecraft player profiles",
		Long: `mclookup is a CLI tool for looking up Minecraft Java Edition players.

Given a username it resolves the player's UUID through PlayerDB, fetches the
profile from Ashcon and shows:
  - The canonical username and UUID
  - The skin image URL and skin model (Classic or Alex (Slim))
  - The cape, if the player has one
  - The account creation date, when known
  - Links to NameMC and a UUID lookup site

Skins can be downloaded as <username>_skin.png.`,
		Example: `  # Look up a player
  mclookup lookup Notch

  # Look up a player and download the skin
  mclookup lookup Notch --download

  # Machine-readable output
  mclookup lookup Notch --json

  # Open the interactive dashboard
  mclookup ui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger based on flags
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Initialize config
			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with overrides (default: ~/.config/mclookup/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	// Mark json and quiet as mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(NewLookupCommand())
	rootCmd.AddCommand(NewUICommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	return config.NewCommand(IsJSONOutput)
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	// Determine log level
	switch {
	case quiet:
		logLevel.Set(slog.LevelError)
	case verbose:
		logLevel.Set(slog.LevelDebug)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// applyLogLevel sets the configured level unless --quiet or --verbose decided it.
func applyLogLevel(level string) {
	if quiet || verbose || level == "" {
		return
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		logger.Warn("ignoring invalid log level", "level", level, "error", err)
		return
	}
	logLevel.Set(l)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return fmt.Errorf("get config directory: %w", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, api.timeout -> MCLOOKUP_API_TIMEOUT
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(replacer())
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// replacer maps dotted config keys onto environment variable names.
func replacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
