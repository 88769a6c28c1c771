package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleConfigCreate(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	created, err := deps.Store.CreateConfig(ctx, req.ConfigName)
	if err != nil {
		return wire.Response{RequestState: wire.DBError}, nil
	}
	return wire.Response{
		RequestState:      wire.Success,
		ConfigKey:         created.ConfigKey,
		ReadonlyConfigKey: created.ReadonlyConfigKey,
	}, nil
}
