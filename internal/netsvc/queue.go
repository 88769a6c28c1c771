package netsvc

import (
	"sync"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// connEvent is one unit of work for the dispatch goroutine: a decoded
// request, a malformed-request marker, or a teardown signal, each tagged
// with the connection it came from.
type connEvent struct {
	token session.Token
	kind  eventKind
	req   wire.Request
	conn  *connection
}

// eventQueue is an unbounded, thread-safe FIFO feeding the single dispatch
// goroutine from any number of connection-reader goroutines. The shape
// (mutex-guarded slice, buffered signal channel, TryDequeue+Wait for
// context-aware blocking) mirrors the single-writer engine's own event
// queue; only the element type differs.
type eventQueue struct {
	mu     sync.Mutex
	events []connEvent
	closed bool
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		events: make([]connEvent, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue appends ev. Safe from any goroutine. Returns false once Close has
// been called.
func (q *eventQueue) Enqueue(ev connEvent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.events = append(q.events, ev)
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// TryDequeue removes and returns the front event without blocking.
func (q *eventQueue) TryDequeue() (connEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return connEvent{}, false
	}
	e := q.events[0]
	q.events[0] = connEvent{}
	if len(q.events) == 1 {
		q.events = q.events[:0]
	} else {
		q.events = q.events[1:]
	}
	return e, true
}

// Wait returns a channel that becomes ready when an event may be available,
// or is closed once the queue itself is closed.
func (q *eventQueue) Wait() <-chan struct{} {
	return q.signal
}

// Len reports the current queue length.
func (q *eventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Closed reports whether Close has been called.
func (q *eventQueue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Close marks the queue closed and wakes every blocked waiter.
func (q *eventQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}
