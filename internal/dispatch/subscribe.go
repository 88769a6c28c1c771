package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleSubscribeSetting(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	if !sess.HasLoaded(req.ConfigID) {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}
	if req.AliasName != "" {
		return wire.Response{RequestState: wire.InternalError}, nil
	}
	sess.Subscribe(req.ConfigID, req.SettingName)
	return wire.Response{RequestState: wire.Success}, nil
}

func handleUnsubscribeSetting(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	if !sess.HasLoaded(req.ConfigID) {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}
	if req.AliasName != "" {
		return wire.Response{RequestState: wire.InternalError}, nil
	}
	sess.Unsubscribe(req.ConfigID, req.SettingName)
	return wire.Response{RequestState: wire.Success}, nil
}
