package ashcon

import (
	"errors"
	"fmt"
)

// ErrProfileFetch is matched by every ProfileFetchError.
var ErrProfileFetch = errors.New("could not fetch profile info")

// ProfileFetchError reports a failed profile detail request.
type ProfileFetchError struct {
	PlayerID   string
	StatusCode int
	Err        error
}

func (e *ProfileFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch profile %s: status %d", e.PlayerID, e.StatusCode)
	}
	return fmt.Sprintf("fetch profile %s: %v", e.PlayerID, e.Err)
}

// Message is the text shown to the user.
func (e *ProfileFetchError) Message() string {
	return "Could not fetch profile info."
}

func (e *ProfileFetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProfileFetch}
	}
	return []error{ErrProfileFetch, e.Err}
}
