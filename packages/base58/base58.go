// Package base58 converts between big-endian byte sequences and base58 strings using arbitrary-precision
// arithmetic, so that the conversion is exact for any input length.
package base58

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Alphabet is the base58 alphabet. It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ZeroDigit is the character that encodes a digit value of 0 (and a leading zero byte).
const ZeroDigit = '1'

// Base is the radix of the encoding.
const Base = 58

// ErrInvalidCharacter is returned (wrapped in an *InvalidCharacterError) when a string contains a character
// outside of the Alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

var (
	bigBase = big.NewInt(Base)
	bigZero = big.NewInt(0)

	// bitsPerDigit is log2(58).
	bitsPerDigit = math.Log2(Base)
)

// region InvalidCharacterError ////////////////////////////////////////////////////////////////////////////////////////

// InvalidCharacterError reports a character outside of the Alphabet together with its byte position in the input.
// Char is the decoded rune, or the raw byte value if the input is not valid UTF-8 at Position.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

// Error returns a human readable description of the error.
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter.Error(), e.Char, e.Position)
}

// Unwrap makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Encode ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Encode returns the base58 representation of the big-endian integer in input. Every leading zero byte is
// represented by one leading ZeroDigit.
func Encode(input []byte) string {
	zeros := leadingZeroBytes(input)

	n := new(big.Int).SetBytes(input[zeros:])
	remainder := new(big.Int)

	digits := make([]byte, 0, EncodedLen(len(input)))
	for n.Cmp(bigZero) > 0 {
		n.DivMod(n, bigBase, remainder)
		digits = append(digits, Alphabet[remainder.Int64()])
	}
	for i := 0; i < zeros; i++ {
		digits = append(digits, ZeroDigit)
	}

	// digits were collected least significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// EncodePadded encodes input and left-pads the result with ZeroDigit until it is at least width characters long.
func EncodePadded(input []byte, width int) string {
	encoded := Encode(input)
	if len(encoded) >= width {
		return encoded
	}

	return strings.Repeat(string(ZeroDigit), width-len(encoded)) + encoded
}

// EncodedLen returns the number of base58 digits needed to represent any value of byteLen bytes.
func EncodedLen(byteLen int) int {
	return int(math.Ceil(float64(byteLen*8) / bitsPerDigit))
}

func leadingZeroBytes(input []byte) (count int) {
	for count < len(input) && input[count] == 0 {
		count++
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Decode ///////////////////////////////////////////////////////////////////////////////////////////////////////

// digitValues maps a character to its digit value, or -1 if it is not part of the Alphabet.
var digitValues = [256]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, -1, -1, -1, -1, -1, -1,
	-1, 9, 10, 11, 12, 13, 14, 15, 16, -1, 17, 18, 19, 20, 21, -1,
	22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, -1, -1, -1, -1, -1,
	-1, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, -1, 44, 45, 46,
	47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// Decode returns the bytes represented by the base58 string s. Every leading ZeroDigit is restored as one leading
// zero byte. An empty string decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	n := new(big.Int)
	digit := new(big.Int)
	for position, char := range s {
		value := int8(-1)
		if char < 256 {
			value = digitValues[char]
		}
		if value < 0 {
			if char == utf8.RuneError {
				if _, size := utf8.DecodeRuneInString(s[position:]); size == 1 {
					char = rune(s[position])
				}
			}

			return nil, &InvalidCharacterError{Char: char, Position: position}
		}

		n.Mul(n, bigBase)
		n.Add(n, digit.SetInt64(int64(value)))
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == ZeroDigit {
		zeros++
	}

	magnitude := n.Bytes()
	decoded := make([]byte, zeros+len(magnitude))
	copy(decoded[zeros:], magnitude)

	return decoded, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
