package skin

import (
	"errors"
	"fmt"
)

// ErrDownload is matched by every DownloadError.
var ErrDownload = errors.New("failed to fetch skin image")

// DownloadError reports a failed skin image download.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

// Message is the text shown to the user.
func (e *DownloadError) Message() string {
	return "Failed to fetch skin image."
}

func (e *DownloadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDownload}
	}
	return []error{ErrDownload, e.Err}
}
