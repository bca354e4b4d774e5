package gate

import (
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
)

// State is the lifecycle of one protected-page entry.
type State int

const (
	// StateChecking is the transient initial state while the stored
	// credential is read.
	StateChecking State = iota

	// StateDenied is terminal for this page lifetime; only a fresh
	// navigation (a new Guard) re-enters StateChecking.
	StateDenied

	// StateAllowed is terminal for this page lifetime.
	StateAllowed
)

// Guard pins the access decision for one page lifetime. Resolve settles the
// state exactly once; later calls return the settled decision unchanged, so
// a page can never flip from denied to allowed without a new navigation.
type Guard struct {
	state    State
	decision Decision
}

// NewGuard returns a guard in StateChecking.
func NewGuard() *Guard {
	return &Guard{state: StateChecking}
}

// State returns the guard's current state.
func (g *Guard) State() State {
	return g.state
}

// Resolve runs the access check on first call and pins the result.
func (g *Guard) Resolve(cred *domain.Credential, role domain.Role, now time.Time) Decision {
	if g.state != StateChecking {
		return g.decision
	}

	g.decision = Access(cred, role, now)
	if g.decision.Kind == KindAllow {
		g.state = StateAllowed
	} else {
		g.state = StateDenied
	}
	return g.decision
}

// Deny forces the guard into StateDenied with the given decision. Used when
// the backend rejects a request after the guard had already allowed.
func (g *Guard) Deny(decision Decision) {
	g.state = StateDenied
	g.decision = decision
}
