// Package fanout delivers subscription events to every session watching a
// setting that just changed. It runs after a mutating handler's response has
// already been written, so the mutator always sees its own SUCCESS before
// any event derived from that mutation (including on its own socket, if it
// happens to be subscribed to the setting it just changed).
package fanout
