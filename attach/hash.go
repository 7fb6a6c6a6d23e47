// Package attach resolves authored challenge attachments to durable
// URLs using content-addressed deduplication: the SHA-256 of a file's
// bytes identifies its upload, regardless of filename or source path.
package attach

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the SHA-256 digest of data as a 64-character
// lowercase hex string. Two files with identical contents hash
// identically and therefore resolve to the same stored URL.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
