package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

// Partition returns the windows of exactly n elements starting every step
// elements. Windows cut from an Indexed source share its storage.
// It panics if n or step is not positive.
func Partition[T any](src seqs.Source[T], n, step int) [][]T {
	return slices.Collect(seqs.Partition(src, n, step))
}

// Chunks is Partition keeping the short trailing windows.
func Chunks[T any](src seqs.Source[T], n, step int) [][]T {
	return slices.Collect(seqs.Chunks(src, n, step))
}

// PartitionBy returns the runs of consecutive elements sharing f's result.
func PartitionBy[T any, K comparable](seq iter.Seq[T], f func(T) K) [][]T {
	return slices.Collect(seqs.PartitionBy(seq, f))
}
