package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

// Reductions returns every intermediate result of folding seq with f,
// seeded with the first element. It fails with seqs.ErrEmpty on empty input.
func Reductions[T any](seq iter.Seq[T], f func(T, T) T) ([]T, error) {
	return tryCollect(seqs.Reductions(seq, f))
}

// Sums returns the running totals of seq.
func Sums[T seqs.Addable](seq iter.Seq[T]) ([]T, error) {
	return tryCollect(seqs.Sums(seq))
}

// Scan returns every intermediate result of folding seq from initial.
// initial itself is not part of the result.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) []R {
	return slices.Collect(seqs.Scan(seq, initial, reducer))
}

// WithPrev pairs each element (V2) with its predecessor (V1); fill stands in
// for the predecessor of the first element.
func WithPrev[T any](seq iter.Seq[T], fill T) []seqs.Pair[T, T] {
	return collectPairs(seqs.WithPrev(seq, fill))
}

// Pairwise returns every element (V1) with its successor (V2).
func Pairwise[T any](seq iter.Seq[T]) []seqs.Pair[T, T] {
	return collectPairs(seqs.Pairwise(seq))
}

func collectPairs[T any](seq iter.Seq2[T, T]) []seqs.Pair[T, T] {
	var res []seqs.Pair[T, T]
	for a, b := range seq {
		res = append(res, seqs.Pair[T, T]{V1: a, V2: b})
	}
	return res
}
