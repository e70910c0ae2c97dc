package bitwise

// RemoveBit deletes the bit at index. Lower bits are kept, higher bits move
// down one position and the top bit becomes 0.
func RemoveBit(number, index uint32) (uint32, bool) {
	if index >= Width32 {
		return 0, false
	}
	// Bit k of remover is number[k+1] ^ number[k] for k >= index; a shift
	// by 32 yields 0 in Go, so index 31 needs no special case.
	remover := (number>>(index+1) ^ number>>index) << index
	return number ^ remover, true
}
