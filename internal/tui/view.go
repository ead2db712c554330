package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n\n")

	// The notice is drawn above the player panel, which stays visible.
	if m.notice != "" {
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.theme.muted.Render("Looking up player..."))
		b.WriteString("\n")
	}

	if m.downloading {
		b.WriteString(m.theme.muted.Render("Downloading skin..."))
		b.WriteString("\n")
	} else if m.saved != nil {
		b.WriteString(m.theme.status.Render(fmt.Sprintf("Saved %s (%s)", m.saved.Path, m.saved.HumanSize())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header
func (m Model) renderHeader() string {
	title := "mclookup"
	subtitle := "Minecraft Player Lookup"

	totalWidth := 60
	if m.width > 0 {
		totalWidth = m.width
	}

	spacing := totalWidth - len(title) - len(subtitle) - 4
	if spacing < 1 {
		spacing = 1
	}

	return m.theme.header.Render(title + strings.Repeat(" ", spacing) + subtitle)
}

func (m Model) renderInput() string {
	return m.theme.prompt.Render("Username: ") + m.theme.input.Render(m.input) + "█"
}

// renderResult renders the player panel.
func (m Model) renderResult() string {
	r := m.result
	var b strings.Builder

	b.WriteString(m.theme.title.Render(r.Username))
	b.WriteString("\n")

	m.row(&b, "UUID", m.theme.value.Render(r.PlayerID))
	m.row(&b, "Skin", m.theme.link.Render(r.SkinURL))
	m.row(&b, "Model", m.theme.value.Render(r.ModelLabel))
	m.row(&b, "Created", m.theme.value.Render(r.CreatedLabel))
	if r.HasCape() {
		m.row(&b, "Cape", m.theme.link.Render(r.CapeURL))
	} else {
		m.row(&b, "Cape", m.theme.muted.Render(r.CapeLabel()))
	}
	for _, link := range r.Links {
		m.row(&b, link.Label, m.theme.link.Render(link.URL))
	}
	m.row(&b, "Download", m.theme.value.Render(r.DownloadName))

	if len(r.History) == 0 {
		b.WriteString(m.theme.muted.Render("No name history"))
	} else {
		m.row(&b, "History", m.theme.value.Render(strings.Join(r.History, ", ")))
	}

	return m.theme.panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m Model) row(b *strings.Builder, label, value string) {
	b.WriteString(m.theme.label.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func (m Model) renderNotice() string {
	return m.theme.modal.Render(m.notice + "\n\n" + "press any key")
}

// renderFooter renders the key help and visit counter
func (m Model) renderFooter() string {
	actions := "[enter] look up  [ctrl+d] download skin  [ctrl+t] theme  [esc] quit"
	return m.theme.footer.Render(fmt.Sprintf("%s  ·  visits: %s", actions, m.visitsLabel()))
}
