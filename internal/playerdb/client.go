// Package playerdb resolves Minecraft usernames to identities through the PlayerDB API.
package playerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the default PlayerDB API base URL.
	DefaultBaseURL = "https://playerdb.co"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "mclookup/dev (https://github.com/steviee/mclookup)"
)

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a PlayerDB API client for identity lookups.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	userAgent  string
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient HTTPClient
}

// NewClient creates a new PlayerDB API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	slog.Debug("creating PlayerDB API client",
		"base_url", config.BaseURL,
		"timeout", config.Timeout)

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		userAgent:  config.UserAgent,
	}
}

// ResolveIdentity looks up the identity for the given username.
// Any non-200 response, transport failure or incomplete payload is a *NotFoundError.
func (c *Client) ResolveIdentity(ctx context.Context, username string) (*Identity, error) {
	endpoint := fmt.Sprintf("%s/api/player/minecraft/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newNotFound(username, 0, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("playerdb API request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newNotFound(username, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("playerdb lookup failed", "username", username, "status", resp.StatusCode)
		return nil, newNotFound(username, resp.StatusCode, nil)
	}

	var body PlayerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, newNotFound(username, 0, fmt.Errorf("decode response: %w", err))
	}

	player := body.Data.Player
	if player == nil || player.ID == "" || player.Username == "" {
		return nil, newNotFound(username, 0, errors.New("response is missing player id or username"))
	}

	identity := &Identity{
		ID:       player.ID,
		Username: player.Username,
	}

	slog.Debug("playerdb lookup success",
		"username", username,
		"canonical", identity.Username,
		"id", identity.ID,
		"id_kind", idKind(identity.ID))

	return identity, nil
}

// idKind describes an id for logs. The id itself is opaque and never rewritten.
func idKind(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "opaque"
	}
	return fmt.Sprintf("uuid-v%d", parsed.Version())
}
