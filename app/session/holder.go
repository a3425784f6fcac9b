// Package session owns the in-memory User/Session pair for the process
// lifetime and the state machine around it.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"adjaoko/app/domains"
)

// State of the session holder.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Checker resolves the current backend session during initialization.
type Checker interface {
	GetSession(ctx context.Context) (*domains.Session, error)
}

// Holder is the process-wide session holder. It starts uninitialized,
// resolves the initial session check into authenticated or anonymous, and
// afterwards follows auth change notifications for its whole lifetime;
// there is no terminal state. Pass it by reference to consumers; it is not
// a package-level global.
type Holder struct {
	mu      sync.RWMutex
	state   State
	user    *domains.User
	session *domains.Session
	logger  *zap.Logger
}

// NewHolder creates an uninitialized holder.
func NewHolder(logger *zap.Logger) *Holder {
	return &Holder{
		state:  StateUninitialized,
		logger: logger,
	}
}

// Initialize resolves the initial session check. A resolution failure
// lands on anonymous; the app stays usable for public reads.
func (h *Holder) Initialize(ctx context.Context, checker Checker) {
	h.mu.Lock()
	h.state = StateLoading
	h.mu.Unlock()

	sess, err := checker.GetSession(ctx)
	if err != nil {
		h.logger.Error("failed to resolve initial session", zap.Error(err))
		sess = nil
	}

	h.apply(sess)
}

// HandleAuthEvent is the subscription callback for the backend's auth
// change notifications. An event with a session moves to authenticated;
// an empty session clears the pair and moves to anonymous.
func (h *Holder) HandleAuthEvent(event string, sess *domains.Session) {
	h.logger.Debug("auth state change", zap.String("event", event))
	h.apply(sess)
}

func (h *Holder) apply(sess *domains.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sess != nil && sess.User != nil {
		h.session = sess
		h.user = sess.User
		h.state = StateAuthenticated
		return
	}
	h.session = nil
	h.user = nil
	h.state = StateAnonymous
}

// State returns the holder's current state.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

// User returns the current user, or nil when anonymous.
func (h *Holder) User() *domains.User {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.user
}

// Session returns the current session, or nil when anonymous.
func (h *Holder) Session() *domains.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.session
}

// SignedIn reports whether a user is currently authenticated.
func (h *Holder) SignedIn() bool {
	return h.State() == StateAuthenticated
}
