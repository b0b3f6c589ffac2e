package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

// Split returns the elements satisfying predicate and the rest.
func Split[T any](seq iter.Seq[T], predicate func(T) bool) ([]T, []T) {
	return collectBoth(seqs.Split(seq, predicate))
}

// SplitAt returns the first n elements and the remainder.
func SplitAt[T any](seq iter.Seq[T], n int) ([]T, []T) {
	return collectBoth(seqs.SplitAt(seq, n))
}

// SplitBy returns the longest prefix satisfying predicate and the remainder.
func SplitBy[T any](seq iter.Seq[T], predicate func(T) bool) ([]T, []T) {
	return collectBoth(seqs.SplitBy(seq, predicate))
}

func collectBoth[T any](a, b iter.Seq[T]) ([]T, []T) {
	first := slices.Collect(a)
	return first, slices.Collect(b)
}
