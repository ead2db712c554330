// Package tui implements the interactive player lookup dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
)

// Flow is the part of lookup.Flow the dashboard drives.
type Flow interface {
	Lookup(ctx context.Context, raw string) (*lookup.Result, error)
	Download(ctx context.Context) error
	Control() *lookup.DownloadControl
}

// CountFormatter formats the visit counter for display.
type CountFormatter interface {
	FormatCount(n int) string
}

// Options configures the dashboard.
type Options struct {
	DarkMode  bool
	Visits    int
	Counts    CountFormatter
	SaveTheme func(ctx context.Context, dark bool) error
}

// Model is the bubbletea model for the lookup dashboard
type Model struct {
	ctx  context.Context
	flow Flow
	opts Options

	input       string
	result      *lookup.Result
	saved       *skin.Saved
	notice      string
	loading     bool
	downloading bool
	darkMode    bool
	theme       theme

	width    int
	height   int
	quitting bool
}

// NewModel creates a new dashboard model
func NewModel(ctx context.Context, flow Flow, opts Options) Model {
	return Model{
		ctx:      ctx,
		flow:     flow,
		opts:     opts,
		darkMode: opts.DarkMode,
		theme:    newTheme(opts.DarkMode),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the dashboard. newFlow builds the lookup flow around the dashboard's presenter.
func Run(ctx context.Context, newFlow func(lookup.Presenter) Flow, opts Options) error {
	presenter := &Presenter{}
	model := NewModel(ctx, newFlow(presenter), opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	presenter.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}

// lookupCmd runs a lookup; its result arrives through the presenter.
func lookupCmd(ctx context.Context, flow Flow, raw string) tea.Cmd {
	return func() tea.Msg {
		_, err := flow.Lookup(ctx, raw)
		return lookupDoneMsg{username: raw, err: err}
	}
}

// downloadCmd activates the download control.
func downloadCmd(ctx context.Context, flow Flow) tea.Cmd {
	return func() tea.Msg {
		return downloadDoneMsg{err: flow.Download(ctx)}
	}
}

// saveThemeCmd persists the dark-mode flag.
func saveThemeCmd(ctx context.Context, save func(context.Context, bool) error, dark bool) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{err: save(ctx, dark)}
	}
}

func (m Model) visitsLabel() string {
	if m.opts.Counts != nil {
		return m.opts.Counts.FormatCount(m.opts.Visits)
	}
	return strconv.Itoa(m.opts.Visits)
}
