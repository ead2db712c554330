package lookup

import (
	"errors"
	"testing"

	"github.com/steviee/mclookup/internal/ashcon"
	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/skin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "Notch", want: "Notch"},
		{name: "trimmed", raw: "  jeb_\t\n", want: "jeb_"},
		{name: "inner spaces kept", raw: " a b ", want: "a b"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: " \t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuery(tt.raw)
			if tt.wantErr {
				var empty *EmptyInputError
				require.True(t, errors.As(err, &empty))
				assert.True(t, IsUserError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Username)
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty input", err: &EmptyInputError{}, want: "Please enter a username."},
		{name: "not found", err: &playerdb.NotFoundError{Username: "x", StatusCode: 404}, want: "Error: User not found."},
		{name: "profile fetch", err: &ashcon.ProfileFetchError{PlayerID: "x", StatusCode: 500}, want: "Error: Could not fetch profile info."},
		{name: "download", err: &skin.DownloadError{URL: "u", StatusCode: 500}, want: "Download failed: Failed to fetch skin image."},
		{name: "in progress", err: ErrLookupInProgress, want: "A lookup is already in progress."},
		{name: "download in progress", err: ErrDownloadInProgress, want: "A download is already in progress."},
		{name: "nothing to download", err: ErrNothingToDownload, want: "Look up a player first."},
		{name: "wrapped friendly", err: errors.Join(errors.New("ctx"), &playerdb.NotFoundError{Username: "x"}), want: "Error: User not found."},
		{name: "plain error", err: errors.New("boom"), want: "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
