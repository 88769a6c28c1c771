package configstore

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// keyDomain separates this hash's purpose from any other domain-hashed value
// the process might compute. The null byte inside hashWithDomain prevents a
// domain/name boundary collision.
const keyDomain = "albinos/config-key/v1"

// KeyGenerator produces a configuration key salted with the configuration
// name. Implementations must be uniform over at least 10^12 values; the hash
// suffix only needs to be deterministic, not cryptographically secure.
type KeyGenerator interface {
	Generate(name string) string
}

// UUIDKeyGenerator is the production KeyGenerator: a UUIDv7 random token
// (time-sortable, far more than 10^12 distinct values) concatenated with a
// domain-separated SHA-256 digest of the configuration name.
type UUIDKeyGenerator struct{}

func (UUIDKeyGenerator) Generate(name string) string {
	token := uuid.Must(uuid.NewV7()).String()
	return token + hashWithDomain(keyDomain, name)
}

// hashWithDomain computes a hex-encoded SHA-256 digest of domain + 0x00 + data,
// truncated to a fixed-width run of hex digits. Truncation is safe here: the
// digest is a salt for uniqueness, not a security boundary, and uniqueness is
// ultimately enforced by the store's unique index, not by this function.
func hashWithDomain(domain, data string) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))[:24]
}
