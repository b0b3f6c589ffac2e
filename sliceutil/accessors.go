package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

// Take returns the first min(n, len) elements of seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	return slices.Collect(seqs.Take(seq, n))
}

// ButLast returns every element of seq except the last one.
func ButLast[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seqs.ButLast(seq))
}
