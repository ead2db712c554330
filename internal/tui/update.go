package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/mclookup/internal/lookup"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case renderMsg:
		m.result = msg.result
		m.saved = nil
		return m, nil

	case hideMsg:
		m.result = nil
		m.saved = nil
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case downloadedMsg:
		m.saved = msg.saved
		return m, nil

	case lookupDoneMsg:
		m.loading = false
		if msg.err != nil {
			// The flow has already notified the user.
			slog.Debug("lookup returned error", "username", msg.username, "error", msg.err)
		}
		return m, nil

	case downloadDoneMsg:
		m.downloading = false
		if errors.Is(msg.err, lookup.ErrNothingToDownload) {
			m.notice = lookup.UserMessage(msg.err)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			slog.Warn("failed to save theme preference", "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key acknowledges an open notification.
	if m.notice != "" {
		m.notice = ""
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, lookupCmd(m.ctx, m.flow, m.input)

	case tea.KeyCtrlD:
		if !m.flow.Control().Bound() || m.downloading {
			return m, nil
		}
		m.downloading = true
		return m, downloadCmd(m.ctx, m.flow)

	case tea.KeyCtrlT:
		m.darkMode = !m.darkMode
		m.theme = newTheme(m.darkMode)
		return m, saveThemeCmd(m.ctx, m.opts.SaveTheme, m.darkMode)

	case tea.KeyCtrlU:
		m.input = ""
		return m, nil

	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}

	return m, nil
}
