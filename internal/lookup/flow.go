// Package lookup runs the player lookup flow: resolve identity, fetch profile,
// render the result and bind the skin download action.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/steviee/mclookup/internal/skin"
)

// SkinSaver downloads a skin image to a directory.
type SkinSaver interface {
	Save(ctx context.Context, url, dir, username string) (*skin.Saved, error)
}

// Options configures a Flow.
type Options struct {
	Resolver    IdentityResolver
	Fetcher     ProfileFetcher
	Saver       SkinSaver
	Presenter   Presenter
	Dates       DateFormatter
	DownloadDir string
	Logger      *slog.Logger
}

// Flow drives lookups against a single presenter.
type Flow struct {
	pipeline    *Pipeline
	saver       SkinSaver
	presenter   Presenter
	dates       DateFormatter
	downloadDir string
	logger      *slog.Logger
	control     *DownloadControl

	mu       sync.Mutex
	state    State
	inFlight atomic.Bool
}

// NewFlow creates a Flow in the idle state.
func NewFlow(opts Options) *Flow {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Flow{
		pipeline:    NewPipeline(opts.Resolver, opts.Fetcher),
		saver:       opts.Saver,
		presenter:   opts.Presenter,
		dates:       opts.Dates,
		downloadDir: opts.DownloadDir,
		logger:      logger,
		control:     &DownloadControl{},
		state:       StateIdle,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Control returns the download control bound to the latest result.
func (f *Flow) Control() *DownloadControl {
	return f.control
}

// Lookup resolves raw, renders the result and rebinds the download control.
//
// Empty input is reported to the user and returns *EmptyInputError without touching
// the network or the current render. A lookup triggered while another runs returns
// ErrLookupInProgress. Any stage failure hides the result and notifies the user.
func (f *Flow) Lookup(ctx context.Context, raw string) (*Result, error) {
	q, err := NewQuery(raw)
	if err != nil {
		f.logger.Info("lookup rejected", "reason", err)
		f.presenter.Notify(UserMessage(err))
		return nil, err
	}

	if !f.inFlight.CompareAndSwap(false, true) {
		f.logger.Debug("lookup ignored, another is in flight", "username", q.Username)
		return nil, ErrLookupInProgress
	}
	defer f.inFlight.Store(false)

	f.resetToIdle()

	f.logger.Debug("lookup started", "username", q.Username)

	out, err := f.pipeline.Run(ctx, q, f.transition)
	if err != nil {
		f.fail(q, err)
		return nil, err
	}

	result := BuildResult(out.Identity, out.Profile, f.dates)
	f.control.Rebind(f.downloadHandler(result))

	if err := f.presenter.Render(result); err != nil {
		err = fmt.Errorf("render result: %w", err)
		f.fail(q, err)
		return nil, err
	}

	if err := f.transition(StateRendered); err != nil {
		return nil, err
	}

	f.logger.Info("lookup complete",
		"username", result.Username,
		"id", result.PlayerID,
		"model", result.Model)

	return result, nil
}

// Download activates the download control.
func (f *Flow) Download(ctx context.Context) error {
	return f.control.Activate(ctx)
}

// downloadHandler captures the result it was built for.
func (f *Flow) downloadHandler(result *Result) Handler {
	url := result.SkinURL
	name := result.Username

	return func(ctx context.Context) error {
		saved, err := f.saver.Save(ctx, url, f.downloadDir, name)
		if err != nil {
			f.presenter.Notify(UserMessage(err))
			return err
		}

		if reporter, ok := f.presenter.(DownloadReporter); ok {
			reporter.Downloaded(saved)
		}
		return nil
	}
}

// fail moves to StateFailed, hides the result and notifies the user.
func (f *Flow) fail(q Query, err error) {
	f.control.Detach()
	f.presenter.Notify(UserMessage(err))
	f.presenter.Hide()

	if transitionErr := f.transition(StateFailed); transitionErr != nil {
		f.logger.Debug("failure raised outside a running lookup", "error", transitionErr)
	}

	f.logger.Error("lookup failed", "username", q.Username, "error", err)
}

// resetToIdle returns a finished flow to idle before a new lookup.
func (f *Flow) resetToIdle() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateRendered || f.state == StateFailed {
		f.state = StateIdle
	}
}

func (f *Flow) transition(next State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.state, next)
	}

	f.logger.Debug("lookup state", "from", f.state, "to", next)
	f.state = next
	return nil
}

// IsUserError reports whether err came from the user's input rather than a remote call.
func IsUserError(err error) bool {
	var empty *EmptyInputError
	return errors.As(err, &empty)
}
