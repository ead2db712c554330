package tui

import (
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
)

// renderMsg carries a result from the lookup flow.
type renderMsg struct {
	result *lookup.Result
}

// hideMsg clears the result panel.
type hideMsg struct{}

// noticeMsg opens the notification modal.
type noticeMsg struct {
	text string
}

// downloadedMsg is sent when a skin has been written to disk.
type downloadedMsg struct {
	saved *skin.Saved
}

// lookupDoneMsg is sent when a lookup command returns
type lookupDoneMsg struct {
	username string
	err      error
}

// downloadDoneMsg is sent when a download command returns
type downloadDoneMsg struct {
	err error
}

// themeSavedMsg is sent after the dark-mode preference is written
type themeSavedMsg struct {
	err error
}
