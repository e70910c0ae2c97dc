package bitwise

// BinaryOnesCount returns the number of set bits in number by testing each
// bit from the least significant one up to the highest set bit.
func BinaryOnesCount(number uint32) uint32 {
	var count uint32
	forEachUntilHOB(number, func(n uint32) {
		count += n & 1
	})
	return count
}

// BinaryOnesCountSub returns the number of set bits in number. Each step
// clears the lowest set bit with number & (number - 1).
func BinaryOnesCountSub(number uint32) uint32 {
	if number == 0 {
		return 0
	}
	var count uint32
	for number != 0 {
		number &= number - 1
		count++
	}
	return count
}
