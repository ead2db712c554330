// Package skin downloads player skin images to disk.
package skin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/docker/go-units"
	"github.com/steviee/mclookup/internal/state"
)

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string sent with image requests.
	UserAgent = "mclookup/dev (https://github.com/steviee/mclookup)"
)

// HTTPClient is the subset of *http.Client used by Downloader.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader fetches skin images.
type Downloader struct {
	httpClient HTTPClient
	userAgent  string
}

// Config holds downloader configuration.
type Config struct {
	Timeout    time.Duration
	UserAgent  string
	HTTPClient HTTPClient
}

// Saved describes a skin written to disk.
type Saved struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// HumanSize returns the file size formatted for display, e.g. "4.2kB".
func (s *Saved) HumanSize() string {
	return units.HumanSize(float64(s.Size))
}

// NewDownloader creates a new Downloader.
func NewDownloader(config *Config) *Downloader {
	if config == nil {
		config = &Config{}
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

	return &Downloader{
		httpClient: httpClient,
		userAgent:  config.UserAgent,
	}
}

// FileName returns the download file name for a player.
func FileName(username string) string {
	return username + "_skin.png"
}

// Save downloads the image at url into dir as <username>_skin.png.
// The image is streamed into a temp file that is renamed into place, so a failed
// download never leaves a partial file behind.
func (d *Downloader) Save(ctx context.Context, url, dir, username string) (*Saved, error) {
	body, err := d.open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = body.Close()
	}()

	path := filepath.Join(dir, filepath.Base(FileName(username)))

	n, err := state.AtomicWriteFrom(path, body, 0644)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	saved := &Saved{Path: path, Size: n}
	slog.Info("skin saved", "path", path, "size", saved.HumanSize())

	return saved, nil
}

// open issues the GET and returns the body of a successful response.
func (d *Downloader) open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "image/png,image/*")

	slog.Debug("skin download request", "url", url)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
