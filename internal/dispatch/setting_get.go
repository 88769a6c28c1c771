package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleSettingGet(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	configID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	doc, err := deps.Store.GetConfig(ctx, configID)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	value, ok := doc.Settings[req.SettingName]
	if !ok {
		return wire.Response{RequestState: wire.UnknownSetting}, nil
	}
	return wire.Response{RequestState: wire.Success, SettingValue: value}, nil
}
