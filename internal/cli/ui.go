package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/steviee/mclookup/internal/locale"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/state"
	"github.com/steviee/mclookup/internal/tui"
)

// UILogFileName is written in the config directory while the dashboard owns the terminal.
const UILogFileName = "mclookup.log"

// NewUICommand creates the interactive dashboard command
func NewUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive player lookup dashboard",
		Long: `Launch an interactive TUI for looking up players.

Type a username and press enter. The result panel is replaced on every
successful lookup and cleared when a lookup fails. Notifications stay
on screen until a key is pressed.

Keyboard shortcuts:
  enter       Look up the typed username
  ctrl+d      Download the shown skin
  ctrl+t      Toggle dark mode (remembered)
  ctrl+u      Clear the input
  esc/Ctrl+C  Quit

Logs are written to ~/.config/mclookup/mclookup.log while the dashboard runs.`,
		Example: `  # Launch the dashboard
  mclookup ui

  # Alternative using alias
  mclookup dashboard`,
		Aliases: []string{"dashboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	return cmd
}

// runUI executes the ui command
func runUI(ctx context.Context) error {
	cfg, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	dir, err := downloadDir(cfg, "")
	if err != nil {
		return err
	}

	prefs, err := state.LoadPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	visits, err := state.RecordVisit(ctx)
	if err != nil {
		slog.Warn("failed to record visit", "error", err)
		visits = prefs.VisitCount
	}

	restore, err := logToFile()
	if err != nil {
		return err
	}
	defer restore()

	return tui.Run(ctx,
		func(p lookup.Presenter) tui.Flow {
			return newFlow(cfg, p, dir)
		},
		tui.Options{
			DarkMode:  prefs.DarkMode,
			Visits:    visits,
			Counts:    locale.New(cfg.UI.Locale),
			SaveTheme: state.SetDarkMode,
		})
}

// logToFile sends slog output to the dashboard log file until restore is called.
func logToFile() (restore func(), err error) {
	configDir, err := state.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	if err := state.EnsureDir(configDir); err != nil {
		return nil, err
	}

	path := filepath.Join(configDir, UILogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel})))

	return func() {
		slog.SetDefault(previous)
		_ = f.Close()
	}, nil
}
