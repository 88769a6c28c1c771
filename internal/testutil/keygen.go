// Package testutil holds deterministic test doubles shared across package
// boundaries, for the cases where a local, single-file fake would otherwise
// be duplicated in more than one package's tests.
package testutil

import "fmt"

// FixedKeyGenerator returns keys from a fixed list in order, ignoring the
// name argument. It implements configstore.KeyGenerator without importing
// configstore, so it can be shared by any package exercising key collision
// or retry behavior without introducing an import cycle.
//
// Unlike configstore.UUIDKeyGenerator, FixedKeyGenerator is not safe for
// concurrent use: tests that need concurrency should wrap it themselves.
type FixedKeyGenerator struct {
	keys []string
	next int
}

// NewFixedKeyGenerator returns a generator that yields keys in order. Once
// exhausted, Generate panics — a test that runs out of planned keys has a
// bug in its setup, not a scenario worth silently degrading.
func NewFixedKeyGenerator(keys ...string) *FixedKeyGenerator {
	return &FixedKeyGenerator{keys: keys}
}

func (g *FixedKeyGenerator) Generate(name string) string {
	if g.next >= len(g.keys) {
		panic(fmt.Sprintf("FixedKeyGenerator: exhausted after %d calls", g.next))
	}
	key := g.keys[g.next]
	g.next++
	return key
}

// Remaining reports how many keys are left unconsumed.
func (g *FixedKeyGenerator) Remaining() int {
	return len(g.keys) - g.next
}
