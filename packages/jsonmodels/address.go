package jsonmodels

import (
	"github.com/cockroachdb/errors"

	"github.com/velas/vlxaddress/packages/address"
)

// region ConversionResponse ///////////////////////////////////////////////////////////////////////////////////////////

// ConversionResponse is the JSON model of a converted address, holding both of its representations.
type ConversionResponse struct {
	Eth string `json:"eth"`
	Vlx string `json:"vlx"`
}

// NewConversionResponse creates a JSON model of a converted address.
func NewConversionResponse(eth, vlx string) *ConversionResponse {
	return &ConversionResponse{
		Eth: eth,
		Vlx: vlx,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ErrorResponse ////////////////////////////////////////////////////////////////////////////////////////////////

// ErrorKind names the kind of a failed conversion so that clients can tell them apart.
type ErrorKind string

const (
	// ErrorKindInvalidFormat is reported for empty input and missing prefixes or markers.
	ErrorKindInvalidFormat ErrorKind = "invalidFormat"
	// ErrorKindInvalidLength is reported for payloads or decoded addresses of the wrong size.
	ErrorKindInvalidLength ErrorKind = "invalidLength"
	// ErrorKindInvalidCharacter is reported for characters outside of the base58 alphabet.
	ErrorKindInvalidCharacter ErrorKind = "invalidCharacter"
	// ErrorKindChecksumMismatch is reported if the embedded checksum is wrong.
	ErrorKindChecksumMismatch ErrorKind = "checksumMismatch"
)

// ErrorKindFromError returns the ErrorKind of an error returned by the address package or an empty ErrorKind if the
// error is of no known kind.
func ErrorKindFromError(err error) ErrorKind {
	switch {
	case errors.Is(err, address.ErrInvalidFormat):
		return ErrorKindInvalidFormat
	case errors.Is(err, address.ErrInvalidLength):
		return ErrorKindInvalidLength
	case errors.Is(err, address.ErrInvalidCharacter):
		return ErrorKindInvalidCharacter
	case errors.Is(err, address.ErrChecksumMismatch):
		return ErrorKindChecksumMismatch
	default:
		return ""
	}
}

// Err returns the address package error that corresponds to the ErrorKind or nil if there is none.
func (k ErrorKind) Err() error {
	switch k {
	case ErrorKindInvalidFormat:
		return address.ErrInvalidFormat
	case ErrorKindInvalidLength:
		return address.ErrInvalidLength
	case ErrorKindInvalidCharacter:
		return address.ErrInvalidCharacter
	case ErrorKindChecksumMismatch:
		return address.ErrChecksumMismatch
	default:
		return nil
	}
}

// ErrorResponse is the response that is returned when an error occurred in any of the endpoints.
type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind,omitempty"`
}

// NewErrorResponse returns an ErrorResponse from the given error.
func NewErrorResponse(err error) *ErrorResponse {
	return &ErrorResponse{
		Error: err.Error(),
		Kind:  ErrorKindFromError(err),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
