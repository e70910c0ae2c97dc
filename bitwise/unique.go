package bitwise

import "golang.org/x/exp/constraints"

// FindUnique returns the element of vals that occurs an odd number of times,
// by XOR-folding the slice. Every other element must occur an even number of
// times; this is not checked and a violated precondition yields an arbitrary
// value. ok is false for an empty slice.
func FindUnique[T constraints.Integer](vals []T) (unique T, ok bool) {
	if len(vals) == 0 {
		return unique, false
	}
	for _, v := range vals {
		unique ^= v
	}
	return unique, true
}
