package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

func Concat[T any](ss ...iter.Seq[T]) []T {
	return slices.Collect(seqs.Concat(ss...))
}

func Cat[T any](ss iter.Seq[iter.Seq[T]]) []T {
	return slices.Collect(seqs.Cat(ss))
}

// FlatMap maps every element to a sequence and concatenates the results.
func FlatMap[S, T any](seq iter.Seq[S], f func(S) iter.Seq[T]) []T {
	return slices.Collect(seqs.FlatMap(seq, f))
}

// Flatten returns the leaves of a nested structure; see seqs.Flatten.
func Flatten(seq iter.Seq[any], follow func(any) bool) []any {
	return slices.Collect(seqs.Flatten(seq, follow))
}

func Interleave[T any](ss ...iter.Seq[T]) []T {
	return slices.Collect(seqs.Interleave(ss...))
}

func Interpose[T any](seq iter.Seq[T], sep T) []T {
	return slices.Collect(seqs.Interpose(seq, sep))
}
