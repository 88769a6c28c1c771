package testutil

import (
	"sync"

	"github.com/raven-os/albinos/internal/wire"
)

// RecordingSink is a session.EventSink that records every event it receives
// instead of writing to a socket. Safe for concurrent use since fan-out may
// be exercised from tests that also mutate state on other goroutines.
type RecordingSink struct {
	mu     sync.Mutex
	events []wire.SubscriptionEvent
}

func (s *RecordingSink) WriteEvent(ev wire.SubscriptionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// Events returns a copy of every event recorded so far.
func (s *RecordingSink) Events() []wire.SubscriptionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]wire.SubscriptionEvent, len(s.events))
	copy(out, s.events)
	return out
}
