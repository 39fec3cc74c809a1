package ui

import "github.com/yildizm/AirdropSim/internal/client"

// State is everything the view renders. It is a value: transitions return a
// new State so no render ever observes a half-applied change.
type State struct {
	Address     string
	Loading     bool
	Err         string
	Result      *client.AnalysisResult
	ShowSupport bool

	// Generation identifies the request whose outcome the state is waiting for
	Generation uint64
}

// BeginFetch starts a new request for the current address.
// Result, error and the support panel are cleared in one step.
func (s State) BeginFetch() State {
	return State{
		Address:    s.Address,
		Loading:    true,
		Generation: s.Generation + 1,
	}
}

// Succeed applies a successful response. ok is false when the response
// belongs to an older request and was dropped.
func (s State) Succeed(generation uint64, result *client.AnalysisResult) (next State, ok bool) {
	if generation != s.Generation {
		return s, false
	}
	return State{
		Address:     s.Address,
		Result:      result,
		ShowSupport: true,
		Generation:  s.Generation,
	}, true
}

// Fail applies a failed response with the given user-facing message
func (s State) Fail(generation uint64, message string) (next State, ok bool) {
	if generation != s.Generation {
		return s, false
	}
	return State{
		Address:    s.Address,
		Err:        message,
		Generation: s.Generation,
	}, true
}

// WithAddress returns the state with the address text replaced
func (s State) WithAddress(address string) State {
	s.Address = address
	return s
}

// ResultsVisible reports whether the results panel is shown
func (s State) ResultsVisible() bool {
	return s.Loading || s.Result != nil || s.Err != ""
}
