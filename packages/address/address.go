// Package address converts between hex encoded 20 byte addresses ("0x..." eth form) and their base58check encoded
// counterparts that start with the marker character V (vlx form).
package address

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/velas/vlxaddress/packages/base58"
	"github.com/velas/vlxaddress/packages/checksum"
)

const (
	// PayloadLength is the length of an address payload in bytes.
	PayloadLength = 20

	// LongAddressLength is the length of a payload followed by its checksum in bytes.
	LongAddressLength = PayloadLength + checksum.Length

	// Marker is the character every encoded address starts with.
	Marker = "V"

	// HexPrefix is the prefix of the hex representation of an address.
	HexPrefix = "0x"
)

// EncodedBodyLength is the width of the base58 part of an encoded address. Shorter encodings are left-padded with
// the base58 zero digit, so every encoded address has the same length.
var EncodedBodyLength = base58.EncodedLen(LongAddressLength)

// region Payload //////////////////////////////////////////////////////////////////////////////////////////////////////

// Payload is the 20 byte body of an address.
type Payload [PayloadLength]byte

// PayloadFromHex parses a Payload from its hex representation. The "0x" prefix is optional and both the prefix and
// the digits are case-insensitive.
func PayloadFromHex(hexAddress string) (payload Payload, err error) {
	if hexAddress == "" {
		err = errors.Errorf("empty hex address: %w", ErrInvalidFormat)
		return
	}

	cleanHex := strings.ToLower(hexAddress)
	cleanHex = strings.TrimPrefix(cleanHex, HexPrefix)
	if len(cleanHex) != 2*PayloadLength {
		err = errors.Errorf("hex address must have %d digits, got %d: %w", 2*PayloadLength, len(cleanHex), ErrInvalidLength)
		return
	}

	// the payload must consist of exactly 40 hex digits, anything else is a length violation
	if _, decodeErr := hex.Decode(payload[:], []byte(cleanHex)); decodeErr != nil {
		err = errors.Errorf("hex address must have %d hex digits (%v): %w", 2*PayloadLength, decodeErr, ErrInvalidLength)
		return
	}

	return
}

// Hex returns the canonical lowercase hex representation of the Payload without prefix.
func (p Payload) Hex() string {
	return hex.EncodeToString(p[:])
}

// Checksum returns the checksum of the Payload as hex text.
func (p Payload) Checksum() string {
	return checksum.Compute(p.Hex())
}

// LongAddress returns the Payload followed by its checksum.
func (p Payload) LongAddress() (longAddress LongAddress) {
	copy(longAddress[:PayloadLength], p[:])
	if _, err := hex.Decode(longAddress[PayloadLength:], []byte(p.Checksum())); err != nil {
		panic(err)
	}

	return
}

// Vlx returns the encoded (vlx) form of the Payload.
func (p Payload) Vlx() string {
	return p.LongAddress().Base58()
}

// String returns the "0x" prefixed hex representation of the Payload.
func (p Payload) String() string {
	return HexPrefix + p.Hex()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region LongAddress //////////////////////////////////////////////////////////////////////////////////////////////////

// LongAddress is a Payload followed by its 4 byte checksum.
type LongAddress [LongAddressLength]byte

// LongAddressFromBase58 decodes the base58 part of an encoded address (without marker). The embedded checksum is not
// verified.
func LongAddressFromBase58(body string) (longAddress LongAddress, err error) {
	decoded, err := base58.Decode(body)
	if err != nil {
		err = errors.Errorf("failed to decode base58 address: %w", err)
		return
	}
	if len(body) != EncodedBodyLength {
		err = errors.Errorf("encoded address must have %d base58 digits, got %d: %w", EncodedBodyLength, len(body), ErrInvalidLength)
		return
	}

	// left-padding adds zero digits beyond the 24 byte width
	for len(decoded) > LongAddressLength && decoded[0] == 0 {
		decoded = decoded[1:]
	}
	if len(decoded) != LongAddressLength {
		err = errors.Errorf("decoded address must have %d bytes, got %d: %w", LongAddressLength, len(decoded), ErrInvalidLength)
		return
	}
	copy(longAddress[:], decoded)

	return
}

// Payload returns the payload part of the LongAddress.
func (l LongAddress) Payload() (payload Payload) {
	copy(payload[:], l[:PayloadLength])

	return
}

// Checksum returns the embedded checksum as hex text.
func (l LongAddress) Checksum() string {
	return hex.EncodeToString(l[PayloadLength:])
}

// Verify checks the embedded checksum against the payload.
func (l LongAddress) Verify() error {
	payloadHex := l.Payload().Hex()
	if !checksum.Verify(payloadHex, l.Checksum()) {
		return errors.Errorf("embedded checksum %s does not match %s: %w", l.Checksum(), checksum.Compute(payloadHex), ErrChecksumMismatch)
	}

	return nil
}

// Bytes returns a copy of the raw bytes of the LongAddress.
func (l LongAddress) Bytes() []byte {
	return append([]byte{}, l[:]...)
}

// Base58 returns the encoded (vlx) form of the LongAddress including the marker.
func (l LongAddress) Base58() string {
	return Marker + base58.EncodePadded(l[:], EncodedBodyLength)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region conversion ///////////////////////////////////////////////////////////////////////////////////////////////////

// EthToVlx converts a hex address into its encoded (vlx) form.
func EthToVlx(hexAddress string) (string, error) {
	payload, err := PayloadFromHex(hexAddress)
	if err != nil {
		return "", err
	}

	return payload.Vlx(), nil
}

// VlxToEth converts an encoded (vlx) address into its lowercase, "0x" prefixed hex form.
func VlxToEth(encodedAddress string) (string, error) {
	if encodedAddress == "" {
		return "", errors.Errorf("empty encoded address: %w", ErrInvalidFormat)
	}
	if !strings.HasPrefix(encodedAddress, Marker) {
		return "", errors.Errorf("encoded address must start with %s: %w", Marker, ErrInvalidFormat)
	}

	longAddress, err := LongAddressFromBase58(strings.TrimPrefix(encodedAddress, Marker))
	if err != nil {
		return "", err
	}
	if err := longAddress.Verify(); err != nil {
		return "", err
	}

	return longAddress.Payload().String(), nil
}

// IsValidEth returns true if hexAddress can be converted by EthToVlx.
func IsValidEth(hexAddress string) bool {
	_, err := PayloadFromHex(hexAddress)

	return err == nil
}

// IsValidVlx returns true if encodedAddress can be converted by VlxToEth.
func IsValidVlx(encodedAddress string) bool {
	_, err := VlxToEth(encodedAddress)

	return err == nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
