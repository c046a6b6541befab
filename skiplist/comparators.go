package skiplist

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

var (
	IntComparator     = OrderedComparator[int]
	Int64Comparator   = OrderedComparator[int64]
	Uint64Comparator  = OrderedComparator[uint64]
	Float64Comparator = OrderedComparator[float64]
	StringComparator  = OrderedComparator[string]
)

// OrderedComparator compares any ordered type with the builtin operators.
func OrderedComparator[T constraints.Ordered](a, b T) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}

	return 0
}

// BytesComparator orders byte slices lexicographically.
func BytesComparator(a, b []byte) int {
	return bytes.Compare(a, b)
}

func InverseComparator[T any](comparator Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -comparator(a, b) }
}
