package playerdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name          string
		config        *Config
		wantBaseURL   string
		wantUserAgent string
	}{
		{
			name:          "nil config uses defaults",
			config:        nil,
			wantBaseURL:   DefaultBaseURL,
			wantUserAgent: UserAgent,
		},
		{
			name: "custom config",
			config: &Config{
				BaseURL:   "https://custom.api.example.com/",
				Timeout:   5 * time.Second,
				UserAgent: "custom-agent",
			},
			wantBaseURL:   "https://custom.api.example.com",
			wantUserAgent: "custom-agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClient(tt.config)

			assert.Equal(t, tt.wantBaseURL, got.baseURL)
			assert.Equal(t, tt.wantUserAgent, got.userAgent)
			assert.NotNil(t, got.httpClient)
		})
	}
}

func TestClient_ResolveIdentity(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		statusCode int
		body       string
		wantID     string
		wantName   string
		wantStatus int
		wantErr    bool
	}{
		{
			name:       "successful lookup",
			username:   "notch",
			statusCode: http.StatusOK,
			body:       `{"code":"player.found","success":true,"data":{"player":{"id":"069a79f4-44e9-4726-a5be-fca90e38aaf5","username":"Notch"}}}`,
			wantID:     "069a79f4-44e9-4726-a5be-fca90e38aaf5",
			wantName:   "Notch",
		},
		{
			name:       "undashed uppercase id is kept verbatim",
			username:   "Notch",
			statusCode: http.StatusOK,
			body:       `{"data":{"player":{"id":"069A79F444E94726A5BEFCA90E38AAF5","username":"Notch"}}}`,
			wantID:     "069A79F444E94726A5BEFCA90E38AAF5",
			wantName:   "Notch",
		},
		{
			name:       "non uuid id is kept verbatim",
			username:   "Steve",
			statusCode: http.StatusOK,
			body:       `{"data":{"player":{"id":"opaque-123","username":"Steve"}}}`,
			wantID:     "opaque-123",
			wantName:   "Steve",
		},
		{
			name:       "404 is not found",
			username:   "NoSuchPlayer",
			statusCode: http.StatusNotFound,
			body:       `{"code":"minecraft.invalid_username","success":false}`,
			wantStatus: http.StatusNotFound,
			wantErr:    true,
		},
		{
			name:       "500 is not found",
			username:   "Notch",
			statusCode: http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
		{
			name:       "malformed json",
			username:   "Notch",
			statusCode: http.StatusOK,
			body:       `{"data":`,
			wantErr:    true,
		},
		{
			name:       "missing player",
			username:   "Notch",
			statusCode: http.StatusOK,
			body:       `{"data":{}}`,
			wantErr:    true,
		},
		{
			name:       "missing username",
			username:   "Notch",
			statusCode: http.StatusOK,
			body:       `{"data":{"player":{"id":"069a79f4-44e9-4726-a5be-fca90e38aaf5"}}}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/player/minecraft/"+tt.username, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(&Config{BaseURL: server.URL})

			identity, err := client.ResolveIdentity(context.Background(), tt.username)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, identity)
				assert.ErrorIs(t, err, ErrPlayerNotFound)

				var nf *NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, tt.username, nf.Username)
				assert.Equal(t, tt.wantStatus, nf.StatusCode)
				assert.Equal(t, "User not found.", nf.Message())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, identity)
			assert.Equal(t, tt.wantID, identity.ID)
			assert.Equal(t, tt.wantName, identity.Username)
		})
	}
}

func TestClient_ResolveIdentity_EscapesUsername(t *testing.T) {
	var gotRawPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.ResolveIdentity(context.Background(), "a/b c")

	require.Error(t, err)
	assert.Equal(t, "/api/player/minecraft/a%2Fb%20c", gotRawPath)
}

func TestClient_ResolveIdentity_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(&Config{BaseURL: url, Timeout: time.Second})
	identity, err := client.ResolveIdentity(context.Background(), "Notch")

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Zero(t, nf.StatusCode)
	assert.Error(t, nf.Err)
}

func TestClient_ResolveIdentity_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.ResolveIdentity(ctx, "Notch")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIDKind(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "069a79f4-44e9-4726-a5be-fca90e38aaf5", want: "uuid-v4"},
		{id: "069A79F444E94726A5BEFCA90E38AAF5", want: "uuid-v4"},
		{id: "opaque-123", want: "opaque"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, idKind(tt.id))
		})
	}
}
