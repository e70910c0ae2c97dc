package bitwise

import (
	"io"
	"strconv"
	"strings"

	"github.com/23skdu/bitwise/internal/errors"
)

const zeroChar = '0'

// forEachUntilHOB calls fn with number, then with number shifted right one
// position at a time, stopping after the value holding the highest set bit in
// its lowest position. fn is always called at least once, so zero yields one
// call.
func forEachUntilHOB(number uint32, fn func(uint32)) {
	for {
		fn(number)
		shifted := number >> 1
		if shifted == 0 {
			return
		}
		number = shifted
	}
}

// WriteBinaryRepresentation writes the minimal binary form of number to w,
// most significant bit first. Zero is written as "0". A failed write is
// returned as is and not retried.
func WriteBinaryRepresentation(w io.Writer, number uint32) error {
	var buf [Width32]byte
	pos := len(buf)
	forEachUntilHOB(number, func(n uint32) {
		pos--
		buf[pos] = byte(zeroChar + n&1)
	})
	if _, err := w.Write(buf[pos:]); err != nil {
		return errors.WrapIOError(err, "write_binary_representation", "sink write failed")
	}
	return nil
}

// BinaryString returns the binary representation of number as a string.
func BinaryString(number uint32) string {
	var sb strings.Builder
	sb.Grow(int(Width32))
	// strings.Builder never fails a write.
	_ = WriteBinaryRepresentation(&sb, number)
	return sb.String()
}

// ParseBinaryRepresentation parses text produced by WriteBinaryRepresentation.
func ParseBinaryRepresentation(s string) (uint32, error) {
	if s == "" {
		return 0, errors.NewValidationError("parse_binary_representation", "empty input")
	}
	v, err := strconv.ParseUint(s, 2, int(Width32))
	if err != nil {
		return 0, errors.WrapValidationError(err, "parse_binary_representation", "not a 32-bit binary number").
			WithContext("input", s)
	}
	return uint32(v), nil
}
