package bitwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularShl(t *testing.T) {
	assert.Equal(t, uint8(0b00001110), CircularShl(0b10000011, 2))
	assert.Equal(t, uint8(0b00000101), CircularShl(0b10000010, 1))
	assert.Equal(t, uint8(0b00001011), CircularShl(0b11000010, 2))
	assert.Equal(t, uint8(0b00001011), CircularShl(0b11000010, 10))
	assert.Equal(t, uint8(0), CircularShl(0, 5))
	assert.Equal(t, uint8(228), CircularShl(228, 0))
	assert.Equal(t, uint8(0b1010111), CircularShl(0b10111010, 5))
}

func TestCircularShr(t *testing.T) {
	assert.Equal(t, uint8(0b11100000), CircularShr(0b10000011, 2))
	assert.Equal(t, uint8(0b1000001), CircularShr(0b10000010, 1))
	assert.Equal(t, uint8(0b1110000), CircularShr(0b10000011, 3))
	assert.Equal(t, uint8(0), CircularShr(0, 5))
	assert.Equal(t, uint8(228), CircularShr(228, 0))
	assert.Equal(t, uint8(0b11000010), CircularShr(0b11000010, 8))
	assert.Equal(t, uint8(0b1100001), CircularShr(0b11000010, 9))
	assert.Equal(t, uint8(0b11010101), CircularShr(0b10111010, 5))
}

func TestCircularShifts_Inverse(t *testing.T) {
	for count := uint32(0); count < 2*Width8; count++ {
		for n := 0; n <= math.MaxUint8; n++ {
			b := uint8(n)
			assert.Equal(t, b, CircularShr(CircularShl(b, count), count))
			assert.Equal(t, b, CircularShl(CircularShr(b, count), count))
		}
	}
}
