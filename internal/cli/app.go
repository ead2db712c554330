package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/steviee/mclookup/internal/ashcon"
	"github.com/steviee/mclookup/internal/locale"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/ratelimit"
	"github.com/steviee/mclookup/internal/skin"
	"github.com/steviee/mclookup/internal/state"
)

// reportedError marks a failure the presenter has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Exit codes returned by the mclookup binary.
const (
	ExitFailure = 1
	// ExitUsage means the input was rejected before any lookup ran.
	ExitUsage = 2
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if lookup.IsUserError(err) {
		return ExitUsage
	}
	return ExitFailure
}

// loadSettings loads the config file and applies viper overrides.
func loadSettings(ctx context.Context) (*state.Config, error) {
	cfg, err := state.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyOverrides(cfg, viper.GetViper()); err != nil {
		return nil, err
	}

	applyLogLevel(cfg.Logging.Level)

	return cfg, nil
}

// applyOverrides copies every config key set in v (flag file or MCLOOKUP_* env) onto cfg.
func applyOverrides(cfg *state.Config, v *viper.Viper) error {
	for _, key := range state.ConfigKeys() {
		if !v.IsSet(key) {
			continue
		}

		value := v.GetString(key)
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("invalid override for %s: %w", key, err)
		}
		slog.Debug("config override", "key", key, "value", value)
	}

	return nil
}

// downloadDir resolves the directory skins are saved into.
func downloadDir(cfg *state.Config, override string) (string, error) {
	dir := cfg.Downloads.Directory
	if override != "" {
		dir = override
	}

	expanded, err := state.ExpandHome(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve download directory: %w", err)
	}
	return expanded, nil
}

// RequestsPerMinute caps calls to each lookup API.
const RequestsPerMinute = 60

// throttledClient returns an HTTP client with its own request budget.
func throttledClient(timeout time.Duration) *ratelimit.Client {
	if timeout <= 0 {
		timeout = playerdb.DefaultTimeout
	}
	return ratelimit.Wrap(&http.Client{Timeout: timeout}, ratelimit.New(RequestsPerMinute, time.Minute))
}

// newFlow wires the remote clients into a lookup flow for presenter.
func newFlow(cfg *state.Config, presenter lookup.Presenter, dir string) *lookup.Flow {
	api := cfg.API

	return lookup.NewFlow(lookup.Options{
		Resolver: playerdb.NewClient(&playerdb.Config{
			BaseURL:    api.PlayerDBURL,
			UserAgent:  api.UserAgent,
			HTTPClient: throttledClient(api.Timeout),
		}),
		Fetcher: ashcon.NewClient(&ashcon.Config{
			BaseURL:         api.AshconURL,
			SkinFallbackURL: api.SkinFallbackURL,
			UserAgent:       api.UserAgent,
			HTTPClient:      throttledClient(api.Timeout),
		}),
		Saver: skin.NewDownloader(&skin.Config{
			Timeout:   api.Timeout,
			UserAgent: api.UserAgent,
		}),
		Presenter:   presenter,
		Dates:       locale.New(cfg.UI.Locale),
		DownloadDir: dir,
	})
}
