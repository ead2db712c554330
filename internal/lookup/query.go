package lookup

import "strings"

// Query is a username entered by the user, trimmed and non-empty.
type Query struct {
	Username string
}

// NewQuery trims raw input and rejects it when nothing is left.
func NewQuery(raw string) (Query, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return Query{}, &EmptyInputError{}
	}
	return Query{Username: username}, nil
}
