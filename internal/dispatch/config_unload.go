package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleConfigUnload(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	sess.RemoveTempId(req.ConfigID)
	return wire.Response{RequestState: wire.Success}, nil
}
