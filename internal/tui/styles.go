package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the styles for one colour scheme.
type theme struct {
	header lipgloss.Style
	prompt lipgloss.Style
	input  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	link   lipgloss.Style
	muted  lipgloss.Style
	panel  lipgloss.Style
	modal  lipgloss.Style
	status lipgloss.Style
	footer lipgloss.Style
}

type palette struct {
	accent     lipgloss.Color
	text       lipgloss.Color
	background lipgloss.Color
	muted      lipgloss.Color
	link       lipgloss.Color
	alert      lipgloss.Color
	ok         lipgloss.Color
}

var (
	lightPalette = palette{
		accent:     lipgloss.Color("#00ADD8"),
		text:       lipgloss.Color("#1A1A1A"),
		background: lipgloss.Color("#FFFFFF"),
		muted:      lipgloss.Color("#808080"),
		link:       lipgloss.Color("#005F87"),
		alert:      lipgloss.Color("#D70000"),
		ok:         lipgloss.Color("#008700"),
	}

	darkPalette = palette{
		accent:     lipgloss.Color("#5FD7FF"),
		text:       lipgloss.Color("#E4E4E4"),
		background: lipgloss.Color("#1C1C1C"),
		muted:      lipgloss.Color("#8A8A8A"),
		link:       lipgloss.Color("#87AFFF"),
		alert:      lipgloss.Color("#FF5F5F"),
		ok:         lipgloss.Color("#5FFF87"),
	}
)

func newTheme(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return theme{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.background).
			Background(p.accent).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		input:  lipgloss.NewStyle().Foreground(p.text),
		title:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		label:  lipgloss.NewStyle().Foreground(p.muted).Width(13),
		value:  lipgloss.NewStyle().Foreground(p.text),
		link:   lipgloss.NewStyle().Foreground(p.link).Underline(true),
		muted:  lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.alert).
			Foreground(p.alert).
			Bold(true).
			Padding(1, 3),
		status: lipgloss.NewStyle().Foreground(p.ok),
		footer: lipgloss.NewStyle().Foreground(p.muted),
	}
}
