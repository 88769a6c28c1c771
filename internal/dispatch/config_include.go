package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleConfigInclude(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	dstID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}
	srcID, ok := sess.GetDbId(req.Src)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	// The store adapter's IncludeConfig appends the source's persistent id
	// to the destination's include list; the dispatcher defers to it
	// entirely rather than touching the document itself.
	if _, err := deps.Store.IncludeConfig(ctx, dstID, srcID); err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.UnknownID)}, nil
	}

	return wire.Response{RequestState: wire.Success}, nil
}
