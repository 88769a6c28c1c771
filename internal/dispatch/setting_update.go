package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleSettingUpdate(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	configID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	doc, err := deps.Store.GetConfig(ctx, configID)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	changed := make([]string, 0, len(req.SettingsToUpdate))
	for name, value := range req.SettingsToUpdate {
		doc.Settings[name] = value
		changed = append(changed, name)
	}

	if err := deps.Store.UpdateConfig(ctx, configID, doc); err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	if len(changed) == 0 {
		return wire.Response{RequestState: wire.Success}, nil
	}
	return wire.Response{RequestState: wire.Success}, &FanoutJob{ConfigID: configID, Changed: changed, Event: wire.EventUpdate}
}
