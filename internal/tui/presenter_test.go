package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_ForwardsEvents(t *testing.T) {
	var msgs []tea.Msg
	p := &Presenter{}
	p.Attach(func(msg tea.Msg) { msgs = append(msgs, msg) })

	result := sampleResult()
	saved := &skin.Saved{Path: "/tmp/Notch_skin.png"}

	require.NoError(t, p.Render(result))
	p.Notify("Error: User not found.")
	p.Hide()
	p.Downloaded(saved)

	assert.Equal(t, []tea.Msg{
		renderMsg{result: result},
		noticeMsg{text: "Error: User not found."},
		hideMsg{},
		downloadedMsg{saved: saved},
	}, msgs)
}

func TestPresenter_Detached(t *testing.T) {
	p := &Presenter{}

	assert.NotPanics(t, func() {
		_ = p.Render(sampleResult())
		p.Notify("ignored")
		p.Hide()
	})
}

func TestPresenter_Interfaces(t *testing.T) {
	var _ lookup.Presenter = &Presenter{}
	var _ lookup.DownloadReporter = &Presenter{}
}
