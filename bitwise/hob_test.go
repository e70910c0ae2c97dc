package bitwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hobFinders = map[string]func(uint32) (uint32, bool){
	"shift":         HOB,
	"threshold":     HOBThreshold,
	"power_compare": HOBPowerCompare,
}

func TestHOB(t *testing.T) {
	tests := []struct {
		number uint32
		want   uint32
	}{
		{0b11100100, 7},
		{math.MaxUint32, 31},
		{1, 0},
		{4, 2},
		{1 << 31, 31},
	}
	for name, hob := range hobFinders {
		t.Run(name, func(t *testing.T) {
			for _, tt := range tests {
				got, ok := hob(tt.number)
				require.True(t, ok, "number %b", tt.number)
				assert.Equal(t, tt.want, got, "number %b", tt.number)
			}

			_, ok := hob(0)
			assert.False(t, ok)

			index, ok := hob(1982)
			require.True(t, ok)
			assert.Equal(t, uint32(0b10000000000), uint32(1)<<index)
		})
	}
}
