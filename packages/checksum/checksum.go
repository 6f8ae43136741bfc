// Package checksum derives the 4 byte integrity tag that is embedded into encoded addresses.
//
// The tag is computed over the textual (lowercase hex) form of the address and not over its binary form. Each of the
// two SHA-256 rounds hashes the hex text produced by the previous step.
package checksum

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Length is the length of a checksum in bytes.
const Length = 4

// HexLength is the length of a checksum in hex characters.
const HexLength = 2 * Length

// Compute returns the checksum of the given hex text as HexLength lowercase hex characters.
func Compute(hexText string) string {
	return hashHex(hashHex(hexText))[:HexLength]
}

// Verify returns true if expected is the checksum of hexText.
func Verify(hexText string, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(Compute(hexText)), []byte(expected)) == 1
}

func hashHex(text string) string {
	digest := sha256.Sum256([]byte(text))

	return hex.EncodeToString(digest[:])
}
