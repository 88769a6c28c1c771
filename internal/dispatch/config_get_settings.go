package dispatch

import (
	"context"
	"sort"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

func handleConfigGetSettings(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	configID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	doc, err := deps.Store.GetConfig(ctx, configID)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	return wire.Response{RequestState: wire.Success, Settings: doc.Settings}, nil
}

func handleConfigGetSettingsNames(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	configID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	doc, err := deps.Store.GetConfig(ctx, configID)
	if err != nil {
		return wire.Response{RequestState: mapStoreError(err, wire.DBError)}, nil
	}

	// Go maps carry no insertion order; the test suite treats the result as
	// a set, so a deterministic alphabetical order is returned instead.
	names := make([]string, 0, len(doc.Settings))
	for name := range doc.Settings {
		names = append(names, name)
	}
	sort.Strings(names)

	return wire.Response{RequestState: wire.Success, SettingsNames: names}, nil
}
