package netsvc

import (
	"errors"
	"io"
	"log/slog"
	"net"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// eventKind distinguishes what a connEvent represents: a freshly accepted
// connection being handed over, a decoded request, a malformed request, or
// a teardown signal.
type eventKind int

const (
	eventConnected eventKind = iota
	eventRequest
	eventMalformed
	eventDisconnect
)

// writerSink wraps a connection's wire.Writer so it can double as a
// session.EventSink for fan-out, and as the response-writing path for its
// own reader loop. Both uses only ever run from the single dispatch
// goroutine, so no lock is needed.
type writerSink struct {
	writer *wire.Writer
}

func (s *writerSink) WriteEvent(ev wire.SubscriptionEvent) error {
	return s.writer.WriteEvent(ev)
}

// connection bundles everything the dispatch goroutine needs to answer one
// client: its socket, its decoder, and the sink fan-out writes through.
type connection struct {
	conn   net.Conn
	reader *wire.Reader
	sink   *writerSink
}

// readLoop decodes requests off c.conn and enqueues one connEvent per
// request. A malformed request enqueues eventMalformed and keeps reading;
// the connection is not torn down just because one message didn't parse.
// EOF or any other read error enqueues eventDisconnect and stops the loop.
// It runs on its own goroutine so a slow client only blocks its own
// connection, never the dispatch goroutine.
func (c *connection) readLoop(token session.Token, queue *eventQueue, logger *slog.Logger) {
	for {
		req, err := c.reader.Next()
		switch {
		case err == nil:
			if !queue.Enqueue(connEvent{token: token, kind: eventRequest, req: req}) {
				return
			}
		case errors.Is(err, wire.ErrMalformed):
			logger.Debug("malformed request", "error", err)
			if !queue.Enqueue(connEvent{token: token, kind: eventMalformed}) {
				return
			}
		default:
			if !errors.Is(err, io.EOF) {
				logger.Debug("connection read error", "error", err)
			}
			queue.Enqueue(connEvent{token: token, kind: eventDisconnect})
			return
		}
	}
}
