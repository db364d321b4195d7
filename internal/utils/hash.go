package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashVisitorAddress returns the one-way hash stored in place of a visitor's
// network address. The hash is deterministic, so repeat views from the same
// address collapse to one visitor without the raw address ever being kept.
func HashVisitorAddress(address string) string {
	sum := sha256.Sum256([]byte(address))
	return hex.EncodeToString(sum[:])
}
