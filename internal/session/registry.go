package session

import "sync/atomic"

// Token identifies one connection's Session in a Registry. It is an opaque,
// process-wide monotonic counter rather than the raw net.Conn, since a
// wrapped connection value is not a reliable map key across platforms.
type Token int64

// Registry holds every active Session, keyed by Token.
//
// The dispatch goroutine is the only writer and the only reader: handling a
// newly accepted connection calls NewSession, handling a request calls Get,
// and disconnect calls Remove.
// Fan-out (internal/fanout) iterates All after a mutation. None of this
// requires a lock under the single-writer concurrency model; Registry keeps
// no mutex of its own.
type Registry struct {
	nextToken atomic.Int64
	sessions  map[Token]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[Token]*Session)}
}

// NewSession allocates a Token and an empty Session for a freshly accepted
// connection, registers it, and returns both.
func (r *Registry) NewSession() (Token, *Session) {
	token := Token(r.nextToken.Add(1))
	s := New()
	r.sessions[token] = s
	return token, s
}

// Get returns the session for token, if still registered.
func (r *Registry) Get(token Token) (*Session, bool) {
	s, ok := r.sessions[token]
	return s, ok
}

// Remove tears down the session for token. Called once a connection reaches
// end-of-stream or a socket-level error; its subscriptions vanish with it.
func (r *Registry) Remove(token Token) {
	delete(r.sessions, token)
}

// All calls fn for every currently registered session. fn must not mutate
// the registry; fan-out only reads through Session's own methods.
func (r *Registry) All(fn func(Token, *Session)) {
	for token, s := range r.sessions {
		fn(token, s)
	}
}
