package bitwise

// withIndex applies fn when index addresses a bit of a 32-bit word.
func withIndex(index uint32, fn func() uint32) (uint32, bool) {
	if index >= Width32 {
		return 0, false
	}
	return fn(), true
}

// SetBit returns number with the bit at index set to 1.
func SetBit(number, index uint32) (uint32, bool) {
	return withIndex(index, func() uint32 {
		return number | 1<<index
	})
}

// UnsetBit returns number with the bit at index set to 0. The bit is forced
// on and then subtracted.
func UnsetBit(number, index uint32) (uint32, bool) {
	return withIndex(index, func() uint32 {
		mask := uint32(1) << index
		return (number | mask) - mask
	})
}

// UnsetBitXOR is UnsetBit using number & (number ^ mask).
func UnsetBitXOR(number, index uint32) (uint32, bool) {
	return withIndex(index, func() uint32 {
		return number & (number ^ 1<<index)
	})
}

// UnsetBitNot is UnsetBit using number & ^mask.
func UnsetBitNot(number, index uint32) (uint32, bool) {
	return withIndex(index, func() uint32 {
		return number & ^(uint32(1) << index)
	})
}

// InvertBit returns number with the bit at index flipped.
func InvertBit(number, index uint32) (uint32, bool) {
	return withIndex(index, func() uint32 {
		return number ^ 1<<index
	})
}
