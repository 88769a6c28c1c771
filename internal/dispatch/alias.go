package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// Aliases are accepted on the wire but have no implemented semantics; both
// handlers are unconditional no-ops.
func handleAliasSet(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	return wire.Response{RequestState: wire.Success}, nil
}

func handleAliasUnset(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	return wire.Response{RequestState: wire.Success}, nil
}
