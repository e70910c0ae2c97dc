package ops

import (
	"errors"
	"testing"

	"github.com/23skdu/bitwise/bitwise"
	bwerrors "github.com/23skdu/bitwise/internal/errors"
	"github.com/23skdu/bitwise/internal/logging"
	"github.com/23skdu/bitwise/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	e := NewEvaluator(logging.DiscardLogger())

	tests := []struct {
		op   string
		args []uint32
		want Result
	}{
		{"power_of_two", []uint32{3}, Result{8, true}},
		{"binary_ones_count", []uint32{0b11100100}, Result{4, true}},
		{"binary_ones_count_sub_method", []uint32{0b11100100}, Result{4, true}},
		{"hob", []uint32{0b100}, Result{2, true}},
		{"hob_thr", []uint32{0}, Result{}},
		{"hob_comp_pot", []uint32{1982}, Result{10, true}},
		{"set_bit", []uint32{0b101, 1}, Result{0b111, true}},
		{"set_bit", []uint32{0b101, 32}, Result{}},
		{"unset_bit", []uint32{0b101, 2}, Result{1, true}},
		{"unset_bit_xor", []uint32{0b101, 2}, Result{1, true}},
		{"unset_bit_bitwise_not", []uint32{0b101, 2}, Result{1, true}},
		{"invert_bit", []uint32{0b100, 1}, Result{0b110, true}},
		{"circular_shl", []uint32{0b10000011, 2}, Result{0b00001110, true}},
		{"circular_shr", []uint32{0b10000011, 2}, Result{0b11100000, true}},
		{"consecutive_ones_entries_count", []uint32{0b111011011, 2}, Result{4, true}},
		{"consecutive_ones_entries_count", []uint32{0b111011011, 0}, Result{}},
		{"swap_bits", []uint32{0b100011, 1, 4}, Result{0b110001, true}},
		{"swap_bits_xor", []uint32{0b100011, 1, 4}, Result{0b110001, true}},
		{"remove_bit", []uint32{0b100011, 1}, Result{0b10001, true}},
		{"find_unique", []uint32{45, 32, 777, 10, 45, 10, 32}, Result{777, true}},
		{"find_unique", nil, Result{}},
	}
	for _, tt := range tests {
		got, err := e.Eval(tt.op, tt.args...)
		require.NoError(t, err, "%s %v", tt.op, tt.args)
		assert.Equal(t, tt.want, got, "%s %v", tt.op, tt.args)
	}
}

func TestEval_Overflow(t *testing.T) {
	e := NewEvaluator(logging.DiscardLogger())
	c := metrics.OperationsTotal.WithLabelValues("power_of_two", metrics.OutcomeOverflow)
	before := testutil.ToFloat64(c)

	_, err := e.Eval("power_of_two", 32)
	assert.True(t, errors.Is(err, bitwise.ErrOverflow))
	assert.False(t, errors.Is(err, bwerrors.Kind(bwerrors.ErrorTypeValidation)))
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestEval_Validation(t *testing.T) {
	e := NewEvaluator(logging.DiscardLogger())
	validation := bwerrors.Kind(bwerrors.ErrorTypeValidation)

	_, err := e.Eval("popcount", 1)
	assert.True(t, errors.Is(err, validation))

	_, err = e.Eval("set_bit", 1)
	assert.True(t, errors.Is(err, validation))

	_, err = e.Eval("swap_bits", 1, 2, 3, 4)
	assert.True(t, errors.Is(err, validation))

	_, err = e.Eval("circular_shl", 256, 1)
	assert.True(t, errors.Is(err, validation))
}

func TestEval_CountsAbsence(t *testing.T) {
	e := NewEvaluator(logging.DiscardLogger())
	c := metrics.OperationsTotal.WithLabelValues("remove_bit", metrics.OutcomeAbsent)
	before := testutil.ToFloat64(c)

	res, err := e.Eval("remove_bit", 1, 40)
	require.NoError(t, err)
	assert.False(t, res.Present)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
