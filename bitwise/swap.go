package bitwise

func swapGuard(number, i, j uint32, fn func() uint32) (uint32, bool) {
	if i >= Width32 || j >= Width32 {
		return 0, false
	}
	if i == j {
		return number, true
	}
	return fn(), true
}

// SwapBits exchanges the bits at indices i and j. Both positions are cleared
// and then refilled from the number shifted by the distance between them.
func SwapBits(number, i, j uint32) (uint32, bool) {
	return swapGuard(number, i, j, func() uint32 {
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		distance := hi - lo
		loMask := uint32(1) << lo
		hiMask := uint32(1) << hi
		cleared := number & (number ^ loMask ^ hiMask)
		return cleared | (number>>distance)&loMask | (number<<distance)&hiMask
	})
}

// SwapBitsXOR exchanges the bits at indices i and j by flipping both when
// they differ.
func SwapBitsXOR(number, i, j uint32) (uint32, bool) {
	return swapGuard(number, i, j, func() uint32 {
		diff := (number>>i)&1 ^ (number>>j)&1
		return number ^ (diff<<i | diff<<j)
	})
}
