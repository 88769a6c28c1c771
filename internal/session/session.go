package session

import (
	"sync/atomic"

	"github.com/raven-os/albinos/internal/wire"
)

// EventSink delivers an unsolicited subscription event to the connection a
// Session belongs to. netsvc sets it once a connection is accepted, wrapping
// the same wire.Writer its response-writing path uses so responses and
// events interleave correctly on that connection's socket.
type EventSink interface {
	WriteEvent(ev wire.SubscriptionEvent) error
}

// subscriptionKey identifies a single (config_id, setting_name) subscription.
type subscriptionKey struct {
	configID int64
	setting  string
}

// Session is one connection's view of the world: which configurations it
// has loaded (and under which temp-ids), and which settings it watches.
//
// Only the dispatch goroutine touches a Session's maps; nextTempID is an
// atomic counter purely for a clean Next()-style allocator, not because
// concurrent callers are expected.
type Session struct {
	nextTempID atomic.Int64

	tempToConfig map[int64]int64
	configToTemp map[int64]map[int64]struct{}

	subscriptions map[subscriptionKey]struct{}

	sink EventSink
}

// SetSink attaches the connection's event sink. Called once, right after
// the session is created.
func (s *Session) SetSink(sink EventSink) {
	s.sink = sink
}

// Sink returns the connection's event sink, or nil if none was attached
// (e.g. in tests that exercise Session without a live connection).
func (s *Session) Sink() EventSink {
	return s.sink
}

// New returns an empty session, ready for use by a freshly accepted connection.
func New() *Session {
	return &Session{
		tempToConfig:  make(map[int64]int64),
		configToTemp:  make(map[int64]map[int64]struct{}),
		subscriptions: make(map[subscriptionKey]struct{}),
	}
}

// InsertDbId allocates the next temp-id for this session and records both
// directions of the mapping to configID.
func (s *Session) InsertDbId(configID int64) int64 {
	tempID := s.nextTempID.Add(1)
	s.tempToConfig[tempID] = configID

	peers, ok := s.configToTemp[configID]
	if !ok {
		peers = make(map[int64]struct{})
		s.configToTemp[configID] = peers
	}
	peers[tempID] = struct{}{}

	return tempID
}

// RemoveTempId drops the tempID mapping and every subscription held on its
// associated config_id. Silent if tempID was never loaded.
func (s *Session) RemoveTempId(tempID int64) {
	configID, ok := s.tempToConfig[tempID]
	if !ok {
		return
	}
	delete(s.tempToConfig, tempID)

	if peers, ok := s.configToTemp[configID]; ok {
		delete(peers, tempID)
		if len(peers) == 0 {
			delete(s.configToTemp, configID)
		}
	}

	for key := range s.subscriptions {
		if key.configID == configID {
			delete(s.subscriptions, key)
		}
	}
}

// HasLoaded reports whether tempID currently maps to a configuration.
func (s *Session) HasLoaded(tempID int64) bool {
	_, ok := s.tempToConfig[tempID]
	return ok
}

// GetDbId returns the persistent config_id for tempID. Callers must check
// HasLoaded first; GetDbId returns (0, false) on a miss rather than panicking.
func (s *Session) GetDbId(tempID int64) (int64, bool) {
	configID, ok := s.tempToConfig[tempID]
	return configID, ok
}

// GetTempId returns some temp-id this session holds for configID. If the
// same configuration was loaded more than once, any one of its temp-ids is
// returned; the caller (fan-out) cannot distinguish between them anyway.
func (s *Session) GetTempId(configID int64) (int64, bool) {
	peers, ok := s.configToTemp[configID]
	if !ok || len(peers) == 0 {
		return 0, false
	}
	for tempID := range peers {
		return tempID, true
	}
	return 0, false
}

// Subscribe records interest in (config_id, setting) for tempID's
// configuration. Idempotent.
func (s *Session) Subscribe(tempID int64, setting string) bool {
	configID, ok := s.tempToConfig[tempID]
	if !ok {
		return false
	}
	s.subscriptions[subscriptionKey{configID, setting}] = struct{}{}
	return true
}

// Unsubscribe removes a subscription previously recorded by Subscribe.
// Idempotent.
func (s *Session) Unsubscribe(tempID int64, setting string) bool {
	configID, ok := s.tempToConfig[tempID]
	if !ok {
		return false
	}
	delete(s.subscriptions, subscriptionKey{configID, setting})
	return true
}

// IsSubscribed reports whether this session watches setting on configID.
func (s *Session) IsSubscribed(configID int64, setting string) bool {
	_, ok := s.subscriptions[subscriptionKey{configID, setting}]
	return ok
}
