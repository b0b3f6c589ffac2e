package seqs

import "iter"

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Second returns the element after the first one.
func Second[T any](seq iter.Seq[T]) (T, bool) {
	return First(Drop(seq, 1))
}

// Nth returns the element at position n (0-indexed).
// Negative positions are not supported and panic with ErrInvalidArgument;
// they are never counted from the end.
func Nth[T any](seq iter.Seq[T], n int) (T, bool) {
	if n < 0 {
		panic(invalidArg("seqs.Nth: index must not be negative, got %d", n))
	}
	return First(Drop(seq, n))
}

// Last returns the final element of src. Indexed sources answer in O(1),
// anything else is scanned to the end.
func Last[T any](src Source[T]) (T, bool) {
	if ix, ok := src.(Indexed[T]); ok {
		n := ix.Len()
		if n == 0 {
			var zero T
			return zero, false
		}
		return ix.Slice(n-1, n)[0], true
	}
	var last T
	found := false
	for v := range src.Values() {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count consumes seq and reports how many elements it produced.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}
