package lookup

import (
	"errors"

	"github.com/steviee/mclookup/internal/skin"
)

var (
	// ErrLookupInProgress is returned when a lookup is triggered while another runs.
	ErrLookupInProgress = errors.New("lookup already in progress")

	// ErrDownloadInProgress is returned when the download control is activated twice.
	ErrDownloadInProgress = errors.New("download already in progress")

	// ErrNothingToDownload is returned when no rendered result is bound to the control.
	ErrNothingToDownload = errors.New("no player to download")

	// ErrInvalidTransition is returned for a state change the flow does not allow.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// EmptyInputError is returned when the username is empty after trimming.
// It is raised before any network call.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "username is empty"
}

// Message is the text shown to the user.
func (e *EmptyInputError) Message() string {
	return "Please enter a username."
}

// UserMessage returns the notification text for an error raised by the flow.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var empty *EmptyInputError
	if errors.As(err, &empty) {
		return empty.Message()
	}

	var download *skin.DownloadError
	if errors.As(err, &download) {
		return "Download failed: " + download.Message()
	}

	switch {
	case errors.Is(err, ErrLookupInProgress):
		return "A lookup is already in progress."
	case errors.Is(err, ErrDownloadInProgress):
		return "A download is already in progress."
	case errors.Is(err, ErrNothingToDownload):
		return "Look up a player first."
	}

	var friendly interface{ Message() string }
	if errors.As(err, &friendly) {
		return "Error: " + friendly.Message()
	}

	return "Error: " + err.Error()
}
