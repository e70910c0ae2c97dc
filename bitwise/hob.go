package bitwise

// HOB returns the index of the highest set bit of number. ok is false for
// zero, which has no set bit.
func HOB(number uint32) (index uint32, ok bool) {
	if number == 0 {
		return 0, false
	}
	var shifts uint32
	forEachUntilHOB(number, func(uint32) { shifts++ })
	return shifts - 1, true
}

// HOBThreshold is HOB computed by halving a threshold that starts at 2^31
// until it no longer exceeds number.
func HOBThreshold(number uint32) (index uint32, ok bool) {
	if number == 0 {
		return 0, false
	}
	index = Width32 - 1
	threshold := uint32(1) << index
	for number < threshold {
		threshold >>= 1
		index--
	}
	return index, true
}

// HOBPowerCompare is HOB computed by testing powers of two from 2^31 down.
func HOBPowerCompare(number uint32) (index uint32, ok bool) {
	if number == 0 {
		return 0, false
	}
	for i := int(Width32) - 1; i >= 0; i-- {
		pot := uint32(1) << uint(i)
		if number&pot == pot {
			return uint32(i), true
		}
	}
	return 0, false
}
