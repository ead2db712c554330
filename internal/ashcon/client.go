// Package ashcon fetches detailed Minecraft profiles from the Ashcon API.
package ashcon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default Ashcon API base URL.
	DefaultBaseURL = "https://api.ashcon.app"

	// DefaultSkinFallbackURL builds a skin URL from the player id when Ashcon has none.
	DefaultSkinFallbackURL = "https://crafatar.com/skins/%s"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "mclookup/dev (https://github.com/steviee/mclookup)"
)

// createdAtLayouts are tried in order when parsing created_at.
var createdAtLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an Ashcon API client.
type Client struct {
	baseURL         string
	skinFallbackURL string
	httpClient      HTTPClient
	userAgent       string
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	// SkinFallbackURL is a fmt template with a single %s for the player id.
	SkinFallbackURL string
	Timeout         time.Duration
	UserAgent       string
	HTTPClient      HTTPClient
}

// NewClient creates a new Ashcon API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.SkinFallbackURL == "" {
		config.SkinFallbackURL = DefaultSkinFallbackURL
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

	slog.Debug("creating Ashcon API client",
		"base_url", config.BaseURL,
		"timeout", config.Timeout)

	return &Client{
		baseURL:         strings.TrimRight(config.BaseURL, "/"),
		skinFallbackURL: config.SkinFallbackURL,
		httpClient:      httpClient,
		userAgent:       config.UserAgent,
	}
}

// FetchProfile fetches the profile detail for a resolved player id.
func (c *Client) FetchProfile(ctx context.Context, playerID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/mojang/v2/user/%s", c.baseURL, url.PathEscape(playerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ProfileFetchError{PlayerID: playerID, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("ashcon API request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProfileFetchError{PlayerID: playerID, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProfileFetchError{PlayerID: playerID, StatusCode: resp.StatusCode}
	}

	var body UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ProfileFetchError{PlayerID: playerID, Err: fmt.Errorf("decode response: %w", err)}
	}

	return c.derive(playerID, &body), nil
}

// FallbackSkinURL returns the skin URL derived purely from the player id.
func (c *Client) FallbackSkinURL(playerID string) string {
	return fmt.Sprintf(c.skinFallbackURL, playerID)
}

// derive applies the texture fallback rules to a decoded response.
func (c *Client) derive(playerID string, body *UserResponse) *Profile {
	profile := &Profile{
		SkinURL: c.FallbackSkinURL(playerID),
		Model:   ModelClassic,
	}

	if body.Textures != nil && body.Textures.Raw != nil {
		raw := body.Textures.Raw
		if raw.Skin != "" {
			profile.SkinURL = raw.Skin
		}
		profile.CapeURL = raw.Cape
		if raw.Metadata != nil && raw.Metadata.Model == string(ModelSlim) {
			profile.Model = ModelSlim
		}
	}

	if body.CreatedAt != nil && *body.CreatedAt != "" {
		if created, ok := parseCreatedAt(*body.CreatedAt); ok {
			profile.CreatedAt = &created
		} else {
			slog.Warn("ignoring unparsable created_at", "player_id", playerID, "value", *body.CreatedAt)
		}
	}

	return profile
}

func parseCreatedAt(value string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
