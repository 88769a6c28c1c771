package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleConfigLoad(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	hasRW := req.ConfigKey != ""
	hasRO := req.ReadonlyConfigKey != ""
	if hasRW == hasRO {
		// Neither key present, or both — the request must carry exactly one.
		return wire.Response{RequestState: wire.UnknownRequest}, nil
	}

	key := req.ConfigKey
	if hasRO {
		key = req.ReadonlyConfigKey
	}

	configID, err := deps.Store.GetConfigIDByKey(ctx, key)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	name, err := deps.Store.GetConfigName(ctx, configID)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	tempID := sess.InsertDbId(configID)
	return wire.Response{RequestState: wire.Success, ConfigName: name, ConfigID: tempID}, nil
}
