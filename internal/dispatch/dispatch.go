package dispatch

import (
	"context"

	"github.com/raven-os/albinos/internal/configstore"
	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// Deps bundles the process-global collaborators every handler needs.
type Deps struct {
	Store    *configstore.Store
	Registry *session.Registry
}

// FanoutJob describes the event delivery a mutating handler wants run after
// its response has reached the wire. Dispatch never runs fan-out itself;
// the caller (internal/netsvc) is responsible for sequencing
// WriteResponse then fanout.Deliver so O2 holds.
type FanoutJob struct {
	ConfigID int64
	Changed  []string
	Event    wire.SubscriptionEventType
}

// handlerFunc is the shape every per-command file implements.
type handlerFunc func(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob)

// table maps REQUEST_NAME to its handler, one small file per concern,
// rather than one large switch.
var table = map[wire.RequestName]handlerFunc{
	wire.ConfigCreate:           handleConfigCreate,
	wire.ConfigLoad:             handleConfigLoad,
	wire.ConfigUnload:           handleConfigUnload,
	wire.ConfigInclude:          handleConfigInclude,
	wire.SettingUpdate:          handleSettingUpdate,
	wire.SettingRemove:          handleSettingRemove,
	wire.SettingGet:             handleSettingGet,
	wire.ConfigGetSettings:      handleConfigGetSettings,
	wire.ConfigGetSettingsNames: handleConfigGetSettingsNames,
	wire.AliasSet:               handleAliasSet,
	wire.AliasUnset:             handleAliasUnset,
	wire.SubscribeSetting:       handleSubscribeSetting,
	wire.UnsubscribeSetting:     handleUnsubscribeSetting,
}

// Dispatch routes req to its handler. An unrecognized REQUEST_NAME (missing,
// empty, or not in the table) replies UNKNOWN_REQUEST without touching the
// store or session.
func Dispatch(ctx context.Context, deps *Deps, sess *session.Session, req wire.Request) (wire.Response, *FanoutJob) {
	h, ok := table[req.RequestName]
	if !ok {
		return wire.Response{RequestState: wire.UnknownRequest}, nil
	}
	return h(ctx, deps, sess, req)
}

// mapStoreError translates a configstore error into a wire status. Every
// Kind but KindUnknownID has one fixed status; KindUnknownID's status
// depends on the caller (DB_ERROR everywhere except CONFIG_INCLUDE, which
// uses UNKNOWN_ID — see the error-kind table this mirrors).
func mapStoreError(err error, unknownIDState wire.State) wire.State {
	kind, ok := configstore.ErrorKind(err)
	if !ok {
		return wire.InternalError
	}
	switch kind {
	case configstore.KindUnknownKey:
		return wire.UnknownKey
	case configstore.KindUnknownID:
		return unknownIDState
	case configstore.KindStoreError:
		return wire.DBError
	default:
		return wire.InternalError
	}
}
