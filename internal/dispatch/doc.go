// Package dispatch routes a decoded wire.Request to the handler for its
// REQUEST_NAME, enforces the temp-id/store pre-conditions common to every
// command, and produces the wire.Response. Mutating handlers additionally
// return a *FanoutJob describing the event fan-out the caller must run once
// the response has been written, preserving the ordering guarantee that a
// mutator always sees its own SUCCESS before any event it triggers.
package dispatch
