// Package session holds the per-connection state of the dispatch loop: the
// temp-id table that maps a client's loaded configurations to their
// persistent ids, and the subscription set a client has registered.
//
// A Session is owned by exactly one connection and is only ever touched from
// the dispatch goroutine; it keeps no internal lock. The Registry that holds
// all active sessions follows the same rule.
package session
