package address

import (
	"github.com/cockroachdb/errors"

	"github.com/velas/vlxaddress/packages/base58"
)

var (
	// ErrInvalidFormat is returned for empty input and for a missing or wrong prefix or marker.
	ErrInvalidFormat = errors.New("invalid address format")

	// ErrInvalidLength is returned if a hex address does not consist of exactly 40 hex digits or a decoded long
	// address is not 24 bytes long.
	ErrInvalidLength = errors.New("invalid address length")

	// ErrInvalidCharacter is returned if an encoded address contains a character outside of the base58 alphabet.
	// The wrapping *base58.InvalidCharacterError carries the character and its position.
	ErrInvalidCharacter = base58.ErrInvalidCharacter

	// ErrChecksumMismatch is returned if the embedded checksum does not match the recomputed one.
	ErrChecksumMismatch = errors.New("address checksum mismatch")
)
