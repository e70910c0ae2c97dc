package bitwise

func rotate8(b uint8, count uint32, left bool) uint8 {
	if b == 0 {
		return 0
	}
	n := count % Width8
	if n == 0 {
		return b
	}
	if left {
		return b<<n | b>>(Width8-n)
	}
	return b>>n | b<<(Width8-n)
}

// CircularShl rotates b left by count positions. Bits shifted out of the top
// re-enter at the bottom; count is taken modulo 8.
func CircularShl(b uint8, count uint32) uint8 {
	return rotate8(b, count, true)
}

// CircularShr rotates b right by count positions. It is the inverse of
// CircularShl for the same count.
func CircularShr(b uint8, count uint32) uint8 {
	return rotate8(b, count, false)
}
