package embedding

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashString returns a hex-encoded SHA-256 digest used as a stable
// cache key component for embedded texts.
func hashString(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
