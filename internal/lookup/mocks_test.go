package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/steviee/mclookup/internal/ashcon"
	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/skin"
	"github.com/stretchr/testify/mock"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveIdentity(ctx context.Context, username string) (*playerdb.Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerdb.Identity), args.Error(1)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchProfile(ctx context.Context, playerID string) (*ashcon.Profile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ashcon.Profile), args.Error(1)
}

type mockSaver struct {
	mock.Mock
}

func (m *mockSaver) Save(ctx context.Context, url, dir, username string) (*skin.Saved, error) {
	args := m.Called(ctx, url, dir, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skin.Saved), args.Error(1)
}

// recordingPresenter keeps everything the flow showed.
type recordingPresenter struct {
	mu        sync.Mutex
	rendered  []*Result
	notices   []string
	hidden    int
	saved     []*skin.Saved
	renderErr error
}

func (p *recordingPresenter) Render(result *Result) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.renderErr != nil {
		return p.renderErr
	}
	p.rendered = append(p.rendered, result)
	return nil
}

func (p *recordingPresenter) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hidden++
}

func (p *recordingPresenter) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, message)
}

func (p *recordingPresenter) Downloaded(saved *skin.Saved) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved = append(p.saved, saved)
}

// isoDates formats dates as YYYY-MM-DD.
type isoDates struct{}

func (isoDates) FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
