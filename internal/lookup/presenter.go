package lookup

import "github.com/steviee/mclookup/internal/skin"

// Presenter is the surface a lookup renders into.
type Presenter interface {
	// Render shows a result, replacing any previous one.
	Render(result *Result) error
	// Hide removes the result panel.
	Hide()
	// Notify shows a message the user must acknowledge.
	Notify(message string)
}

// DownloadReporter is implemented by presenters that want to hear about saved skins.
type DownloadReporter interface {
	Downloaded(saved *skin.Saved)
}
