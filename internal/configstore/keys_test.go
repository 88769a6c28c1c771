package configstore

import "testing"

func TestHashWithDomain_Deterministic(t *testing.T) {
	a := hashWithDomain(keyDomain, "ma_config")
	b := hashWithDomain(keyDomain, "ma_config")
	if a != b {
		t.Fatalf("expected deterministic output, got %q and %q", a, b)
	}
	if len(a) != 24 {
		t.Fatalf("expected 24 hex characters, got %d (%q)", len(a), a)
	}
}

func TestHashWithDomain_DomainSeparation(t *testing.T) {
	a := hashWithDomain("domain-a", "same-name")
	b := hashWithDomain("domain-b", "same-name")
	if a == b {
		t.Fatal("expected different domains to produce different digests")
	}
}

func TestUUIDKeyGenerator_ProducesDistinctKeys(t *testing.T) {
	gen := UUIDKeyGenerator{}
	a := gen.Generate("ma_config")
	b := gen.Generate("ma_config")
	if a == b {
		t.Fatal("expected successive Generate calls to produce distinct keys")
	}
}
