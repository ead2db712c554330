// Package render writes lookup results to line-oriented output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
)

// Text renders results as a bordered panel.
type Text struct {
	out    io.Writer
	errOut io.Writer

	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	panel  lipgloss.Style
	notice lipgloss.Style
}

// NewText creates a text presenter. Notifications go to errOut.
func NewText(out, errOut io.Writer) *Text {
	r := lipgloss.NewRenderer(out)

	return &Text{
		out:    out,
		errOut: errOut,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ADD8")),
		label:  r.NewStyle().Width(13).Foreground(lipgloss.Color("#808080")),
		value:  r.NewStyle(),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#808080")).Italic(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00ADD8")).
			Padding(0, 1),
		notice: lipgloss.NewRenderer(errOut).NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
	}
}

// Render writes the result panel.
func (t *Text) Render(result *lookup.Result) error {
	if _, err := fmt.Fprintln(t.out, t.panel.Render(t.body(result))); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func (t *Text) body(result *lookup.Result) string {
	var b strings.Builder

	b.WriteString(t.title.Render(result.Username))
	b.WriteString("\n")

	t.row(&b, "UUID", result.PlayerID)
	t.row(&b, "Skin", result.SkinURL)
	t.row(&b, "Model", result.ModelLabel)
	t.row(&b, "Created", result.CreatedLabel)
	t.row(&b, "Cape", result.CapeLabel())
	for _, link := range result.Links {
		t.row(&b, link.Label, link.URL)
	}
	t.row(&b, "Download", result.DownloadName)

	if len(result.History) == 0 {
		b.WriteString(t.muted.Render("No name history"))
	} else {
		t.row(&b, "History", strings.Join(result.History, ", "))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (t *Text) row(b *strings.Builder, label, value string) {
	b.WriteString(t.label.Render(label))
	b.WriteString(t.value.Render(value))
	b.WriteString("\n")
}

// Hide is a no-op: printed output cannot be taken back.
func (t *Text) Hide() {}

// Notify writes message to the error writer.
func (t *Text) Notify(message string) {
	_, _ = fmt.Fprintln(t.errOut, t.notice.Render(message))
}

// Downloaded reports a saved skin.
func (t *Text) Downloaded(saved *skin.Saved) {
	_, _ = fmt.Fprintf(t.out, "Saved %s (%s)\n", saved.Path, saved.HumanSize())
}
