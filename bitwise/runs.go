package bitwise

import "math"

// onesMask returns a word whose lowest runLength bits are set.
func onesMask(runLength uint32) (uint32, bool) {
	switch {
	case runLength == 0 || runLength > Width32:
		return 0, false
	case runLength == Width32:
		return math.MaxUint32, true
	default:
		return 1<<runLength - 1, true
	}
}

// ConsecutiveOnesCount counts the positions p for which the runLength bits
// starting at p are all set. Overlapping runs are counted separately, so
// 0b111 holds two runs of length 2. ok is false when runLength is 0 or
// greater than 32.
func ConsecutiveOnesCount(number, runLength uint32) (count uint32, ok bool) {
	pattern, ok := onesMask(runLength)
	if !ok {
		return 0, false
	}
	const top = uint32(1) << (Width32 - 1)
	for {
		if pattern&number == pattern {
			count++
		}
		if pattern&top == top {
			return count, true
		}
		pattern <<= 1
	}
}
