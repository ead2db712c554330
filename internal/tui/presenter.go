package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
)

// Presenter forwards lookup events into a running program.
type Presenter struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// Attach routes events to send, usually (*tea.Program).Send.
func (p *Presenter) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.send = send
}

func (p *Presenter) dispatch(msg tea.Msg) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

// Render implements lookup.Presenter.
func (p *Presenter) Render(result *lookup.Result) error {
	p.dispatch(renderMsg{result: result})
	return nil
}

// Hide implements lookup.Presenter.
func (p *Presenter) Hide() {
	p.dispatch(hideMsg{})
}

// Notify implements lookup.Presenter.
func (p *Presenter) Notify(message string) {
	p.dispatch(noticeMsg{text: message})
}

// Downloaded implements lookup.DownloadReporter.
func (p *Presenter) Downloaded(saved *skin.Saved) {
	p.dispatch(downloadedMsg{saved: saved})
}
