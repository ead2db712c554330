package playerdb

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is matched by every NotFoundError.
var ErrPlayerNotFound = errors.New("user not found")

// NotFoundError reports that a username could not be resolved to an identity.
type NotFoundError struct {
	Username   string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *NotFoundError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("player %q not found (status %d)", e.Username, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("player %q not found: %v", e.Username, e.Err)
	default:
		return fmt.Sprintf("player %q not found", e.Username)
	}
}

// Message is the text shown to the user.
func (e *NotFoundError) Message() string {
	return "User not found."
}

func (e *NotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPlayerNotFound}
	}
	return []error{ErrPlayerNotFound, e.Err}
}

func newNotFound(username string, status int, cause error) *NotFoundError {
	return &NotFoundError{
		Username:   username,
		StatusCode: status,
		Err:        cause,
	}
}
