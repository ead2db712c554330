package lookup

import "fmt"

// State is a stage of the lookup flow.
type State int

const (
	StateIdle State = iota
	StateResolvingIdentity
	StateFetchingProfile
	StateRendered
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateResolvingIdentity: "resolving_identity",
	StateFetchingProfile:   "fetching_profile",
	StateRendered:          "rendered",
	StateFailed:            "failed",
}

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	StateIdle:              {StateResolvingIdentity},
	StateResolvingIdentity: {StateFetchingProfile, StateFailed},
	StateFetchingProfile:   {StateRendered, StateFailed},
	StateRendered:          {StateIdle},
	StateFailed:            {StateIdle},
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// CanTransition reports whether the flow may move from s to next.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
