package netsvc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"

	"github.com/raven-os/albinos/internal/configstore"
	"github.com/raven-os/albinos/internal/dispatch"
	"github.com/raven-os/albinos/internal/fanout"
	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// Listen binds a UNIX-domain socket at path, first removing whatever file is
// already there (typically a stale socket left behind by a previous,
// uncleanly-terminated process). A removal failure other than the path not
// existing is returned without binding.
func Listen(path string) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return net.Listen("unix", path)
}

// Server owns the accept loop and the single dispatch goroutine that
// processes every request funneled in from every connection. Construct one
// with New, then call Run from exactly one goroutine.
type Server struct {
	listener net.Listener
	store    *configstore.Store
	registry *session.Registry
	logger   *slog.Logger

	queue *eventQueue
	conns map[session.Token]*connection
}

// New builds a Server around an already-open store and listener.
func New(listener net.Listener, store *configstore.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		listener: listener,
		store:    store,
		registry: session.NewRegistry(),
		logger:   logger,
		queue:    newEventQueue(),
		conns:    make(map[session.Token]*connection),
	}
}

// Run accepts connections until ctx is cancelled or the listener fails, and
// drives the single dispatch goroutine that services every accepted
// connection's requests. It blocks until ctx is cancelled, returning
// ctx.Err(), or until accepting fails, returning an error.
//
// CRITICAL: every store and session mutation happens in this goroutine.
// Accept and per-connection reads (connection.readLoop) run independently
// and only ever communicate with Run through s.queue.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server starting", "socket", s.listener.Addr())

	go s.acceptLoop(ctx)

	deps := &dispatch.Deps{Store: s.store, Registry: s.registry}

	for {
		ev, ok := s.queue.TryDequeue()
		if ok {
			s.processEvent(ctx, deps, ev)
			continue
		}

		select {
		case <-ctx.Done():
			s.logger.Info("server stopping: context cancelled")
			s.queue.Close()
			s.teardownAll()
			return ctx.Err()

		case <-s.queue.Wait():
			// A wake-up with nothing to dequeue is not necessarily a closed
			// queue: Enqueue only ever buffers one pending signal, so a
			// second Enqueue arriving while this goroutine is busy inside
			// processEvent leaves a signal here after the queue has already
			// drained it. Only a genuine Close (checked explicitly, never
			// inferred from Len()) ends the loop.
			if s.queue.Closed() {
				s.logger.Info("server stopping: queue closed")
				s.teardownAll()
				return errors.New("listener stopped accepting connections")
			}
		}
	}
}

// acceptLoop accepts connections until ctx is cancelled or Accept fails. It
// never touches the store, the registry or any Session: every accepted
// connection is announced to the dispatch goroutine only through the queue,
// and processEvent gives it a Token, a Session and its own readLoop
// goroutine. An Accept failure while ctx is still live closes the queue, so
// Run stops and reports it.
func (s *Server) acceptLoop(ctx context.Context) {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if !errors.Is(err, net.ErrClosed) {
				s.logger.Error("accept failed", "error", err)
			}
			s.queue.Close()
			return
		}

		c := &connection{
			conn:   conn,
			reader: wire.NewReader(conn),
			sink:   &writerSink{writer: wire.NewWriter(conn)},
		}
		if !s.queue.Enqueue(connEvent{kind: eventConnected, conn: c}) {
			conn.Close()
			return
		}
	}
}

// processEvent handles one connEvent from s.queue. It is only ever called
// from Run's goroutine.
func (s *Server) processEvent(ctx context.Context, deps *dispatch.Deps, ev connEvent) {
	switch ev.kind {
	case eventConnected:
		token, sess := s.registry.NewSession()
		sess.SetSink(ev.conn.sink)
		s.conns[token] = ev.conn
		go ev.conn.readLoop(token, s.queue, s.logger)

	case eventRequest:
		c, ok := s.connFor(ev.token)
		if !ok {
			return
		}
		sess, ok := deps.Registry.Get(ev.token)
		if !ok {
			return
		}
		resp, job := dispatch.Dispatch(ctx, deps, sess, ev.req)
		if err := c.sink.writer.WriteResponse(resp); err != nil {
			s.logger.Debug("write response failed", "error", err)
			s.teardown(ev.token)
			return
		}
		if job != nil {
			fanout.Deliver(deps.Registry, job.ConfigID, job.Changed, job.Event)
		}

	case eventMalformed:
		c, ok := s.connFor(ev.token)
		if !ok {
			return
		}
		if err := c.sink.writer.WriteResponse(wire.Response{RequestState: wire.InternalError}); err != nil {
			s.logger.Debug("write response failed", "error", err)
			s.teardown(ev.token)
		}

	case eventDisconnect:
		s.teardown(ev.token)
	}
}

// connFor returns the connection registered for token. acceptLoop hands the
// *connection over via an eventConnected connEvent rather than writing
// s.conns directly, so the map is only ever touched from Run's goroutine.
func (s *Server) connFor(token session.Token) (*connection, bool) {
	c, ok := s.conns[token]
	return c, ok
}

// teardown closes token's connection, removes it from tracking, and drops
// its Session from the registry.
func (s *Server) teardown(token session.Token) {
	if c, ok := s.conns[token]; ok {
		c.conn.Close()
		delete(s.conns, token)
	}
	s.registry.Remove(token)
}

// teardownAll closes every tracked connection on shutdown.
func (s *Server) teardownAll() {
	for token := range s.conns {
		s.teardown(token)
	}
}
