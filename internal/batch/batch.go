// Package batch evaluates bit operations across Arrow columns. An input null
// or an operation without a value produces a null output row.
package batch

import (
	stderrors "errors"
	"time"

	"github.com/23skdu/bitwise/bitwise"
	"github.com/23skdu/bitwise/internal/errors"
	"github.com/23skdu/bitwise/internal/metrics"
	"github.com/23skdu/bitwise/internal/ops"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Apply evaluates op on every row of col. Row i is evaluated with the
// arguments (col[i], extra...). The caller must Release the returned array.
func Apply(mem memory.Allocator, op ops.Op, col *array.Uint32, extra ...uint32) (*array.Uint32, error) {
	if op.Variadic {
		return nil, errors.NewValidationError("batch_apply", "variadic operations fold a column, use FindUnique").
			WithContext("op", op.Name)
	}
	if len(extra)+1 != op.Arity() {
		return nil, errors.NewValidationError("batch_apply", "wrong number of extra arguments").
			WithContext("op", op.Name).
			WithContext("extra", len(extra))
	}

	start := time.Now()
	defer func() {
		metrics.BatchDurationSeconds.WithLabelValues(op.Name).Observe(time.Since(start).Seconds())
	}()

	b := array.NewUint32Builder(mem)
	defer b.Release()
	b.Reserve(col.Len())

	var counts struct{ ok, absent, overflow, null int }
	args := make([]uint32, op.Arity())
	copy(args[1:], extra)
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			b.AppendNull()
			counts.null++
			continue
		}
		args[0] = col.Value(i)
		res, err := op.Call(args)
		switch {
		case stderrors.Is(err, bitwise.ErrOverflow):
			b.AppendNull()
			counts.overflow++
		case err != nil:
			return nil, errors.WrapValidationError(err, "batch_apply", "row rejected").
				WithContext("op", op.Name).
				WithContext("row", i)
		case !res.Present:
			b.AppendNull()
			counts.absent++
		default:
			b.Append(res.Value)
			counts.ok++
		}
	}

	metrics.BatchRowsTotal.WithLabelValues(op.Name, metrics.OutcomeOK).Add(float64(counts.ok))
	metrics.BatchRowsTotal.WithLabelValues(op.Name, metrics.OutcomeAbsent).Add(float64(counts.absent + counts.null))
	metrics.BatchRowsTotal.WithLabelValues(op.Name, metrics.OutcomeOverflow).Add(float64(counts.overflow))

	return b.NewUint32Array(), nil
}

// Render converts every row of col to its binary text. The caller must
// Release the returned array.
func Render(mem memory.Allocator, col *array.Uint32) *array.String {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.Reserve(col.Len())

	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			b.AppendNull()
			continue
		}
		b.Append(bitwise.BinaryString(col.Value(i)))
	}
	metrics.BatchRowsTotal.WithLabelValues("write_binary_representation", metrics.OutcomeOK).Add(float64(col.Len() - col.NullN()))
	return b.NewStringArray()
}

// FindUnique XOR-folds the non-null values of col. ok is false when col has
// no non-null values.
func FindUnique(col *array.Uint32) (uint32, bool) {
	vals := make([]uint32, 0, col.Len()-col.NullN())
	for i := 0; i < col.Len(); i++ {
		if col.IsValid(i) {
			vals = append(vals, col.Value(i))
		}
	}
	return bitwise.FindUnique(vals)
}

// FromValues builds a column from vals; valid may be nil for a column with
// no nulls.
func FromValues(mem memory.Allocator, vals []uint32, valid []bool) *array.Uint32 {
	b := array.NewUint32Builder(mem)
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewUint32Array()
}
