// Package bitwise implements bit manipulation primitives over fixed-width
// unsigned words: 32-bit words for most operations, 8-bit words for circular
// shifts.
//
// Operations that take a bit index report an out-of-range index (or a value
// with no highest set bit) through a false second return value. Only
// PowerOfTwo fails with an error, ErrOverflow, when the requested magnitude
// does not fit in a word.
//
// Several operations come in more than one algorithmic variant. The variants
// are kept side by side and always return identical results.
package bitwise

import "errors"

const (
	// Width32 is the number of bits in a 32-bit word.
	Width32 uint32 = 32
	// Width8 is the number of bits in an 8-bit word.
	Width8 uint32 = 8
)

// ErrOverflow is returned when a power of two does not fit in a 32-bit word.
var ErrOverflow = errors.New("bitwise: overflow")

// PowerOfTwo returns 2^power, or ErrOverflow when power >= 32.
func PowerOfTwo(power uint32) (uint32, error) {
	if power >= Width32 {
		return 0, ErrOverflow
	}
	return 1 << power, nil
}
