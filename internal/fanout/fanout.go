package fanout

import (
	"github.com/raven-os/albinos/internal/session"
	"github.com/raven-os/albinos/internal/wire"
)

// Deliver scans every active session in registry and, for each one that has
// configID loaded and is subscribed to one of settings, writes a
// subscription event carrying that session's own temp-id for configID.
//
// Delivery is best-effort: a write failure on one session's sink is ignored
// (no retry, no propagation) so a slow or broken client cannot stall
// delivery to the others. Event order across distinct subscribers is
// unspecified (O3): sessions are visited in Go's map iteration order. Within
// a single sink, events are written in the order of settings.
func Deliver(registry *session.Registry, configID int64, settings []string, eventType wire.SubscriptionEventType) {
	registry.All(func(_ session.Token, s *session.Session) {
		tempID, ok := s.GetTempId(configID)
		if !ok {
			return
		}
		sink := s.Sink()
		if sink == nil {
			return
		}
		for _, name := range settings {
			if !s.IsSubscribed(configID, name) {
				continue
			}
			_ = sink.WriteEvent(wire.SubscriptionEvent{
				ConfigID:              tempID,
				SettingName:           name,
				SubscriptionEventType: eventType,
			})
		}
	})
}
