package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// handleSettingRemove replies SUCCESS for any loaded temp-id (UNKNOWN_ID
// otherwise) and never removes the
// named setting from the stored document — an intentionally preserved
// discrepancy between what this command claims to do and what it actually
// does. The DELETE event still fires for anyone subscribed.
func handleSettingRemove(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	configID, ok := sess.GetDbId(req.ConfigID)
	if !ok {
		return wire.Response{RequestState: wire.UnknownID}, nil
	}

	return wire.Response{RequestState: wire.Success},
		&FanoutJob{ConfigID: configID, Changed: []string{req.SettingName}, Event: wire.EventDelete}
}
