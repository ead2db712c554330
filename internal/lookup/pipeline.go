package lookup

import (
	"context"

	"github.com/steviee/mclookup/internal/ashcon"
	"github.com/steviee/mclookup/internal/playerdb"
)

// IdentityResolver resolves a username to an identity.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, username string) (*playerdb.Identity, error)
}

// ProfileFetcher fetches the profile for a resolved player id.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, playerID string) (*ashcon.Profile, error)
}

// Outcome is what a successful pipeline run produced.
type Outcome struct {
	Identity *playerdb.Identity
	Profile  *ashcon.Profile
}

// stage is one asynchronous step of the pipeline.
type stage struct {
	state State
	run   func(ctx context.Context, q Query, out *Outcome) error
}

// Pipeline runs the lookup stages in order. The first failing stage ends the run.
type Pipeline struct {
	stages []stage
}

// NewPipeline builds the identity -> profile pipeline.
func NewPipeline(resolver IdentityResolver, fetcher ProfileFetcher) *Pipeline {
	return &Pipeline{
		stages: []stage{
			{
				state: StateResolvingIdentity,
				run: func(ctx context.Context, q Query, out *Outcome) error {
					identity, err := resolver.ResolveIdentity(ctx, q.Username)
					if err != nil {
						return err
					}
					out.Identity = identity
					return nil
				},
			},
			{
				state: StateFetchingProfile,
				run: func(ctx context.Context, q Query, out *Outcome) error {
					profile, err := fetcher.FetchProfile(ctx, out.Identity.ID)
					if err != nil {
						return err
					}
					out.Profile = profile
					return nil
				},
			},
		},
	}
}

// Run executes every stage for q. observe, when non-nil, is called before each stage
// starts and may abort the run by returning an error.
func (p *Pipeline) Run(ctx context.Context, q Query, observe func(State) error) (*Outcome, error) {
	out := &Outcome{}

	for _, s := range p.stages {
		if observe != nil {
			if err := observe(s.state); err != nil {
				return nil, err
			}
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.run(ctx, q, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}
