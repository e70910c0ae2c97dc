package bitwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swapOp func(number, i, j uint32) (uint32, bool)

var swappers = map[string]swapOp{
	"mask": SwapBits,
	"xor":  SwapBitsXOR,
}

func TestSwapBits(t *testing.T) {
	tests := []struct {
		number, i, j uint32
		want         uint32
	}{
		{0b100011, 1, 4, 0b110001},
		{0b101, 2, 2, 0b101},
		{0b101, 0, 1, 0b110},
		{0b101, 1, 0, 0b110},
		{0, 0, 1, 0},
		{math.MaxUint32, 0, 31, math.MaxUint32},
		{0b11001100101, 10, 1, 0b1001100111},
		{0b11001100101, 10, 5, 0b11001100101},
		{0b11001100101, 1, 31, 0b11001100101},
		{0b11001100101, 0, 31, 0b11001100100 | 1<<31},
	}
	for name, swap := range swappers {
		t.Run(name, func(t *testing.T) {
			for _, tt := range tests {
				got, ok := swap(tt.number, tt.i, tt.j)
				require.True(t, ok)
				assert.Equal(t, tt.want, got, "number %b swap %d<->%d", tt.number, tt.i, tt.j)
			}
		})
	}
}

func TestSwapBits_OutOfRange(t *testing.T) {
	for name, swap := range swappers {
		t.Run(name, func(t *testing.T) {
			for _, idx := range [][2]uint32{{228, 2}, {2, 282}, {282, 282}, {0, 32}, {300, 4}} {
				_, ok := swap(0b101, idx[0], idx[1])
				assert.False(t, ok, "indices %v", idx)
			}
		})
	}
}

func TestSwapBits_Twice(t *testing.T) {
	const number = 0b110101
	for name, swap := range swappers {
		t.Run(name, func(t *testing.T) {
			once, ok := swap(number, 5, 1)
			require.True(t, ok)
			twice, ok := swap(once, 5, 1)
			require.True(t, ok)
			assert.Equal(t, uint32(number), twice)
		})
	}
}
