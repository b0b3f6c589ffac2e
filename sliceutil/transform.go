package sliceutil

import (
	"iter"
	"slices"

	"seqkit/seqs"
)

// Map transforms every element of seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) []R {
	return slices.Collect(seqs.Map(seq, transform))
}

// ZipWith applies f pairwise and stops with the shorter input.
func ZipWith[T1, T2, R any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], f func(T1, T2) R) []R {
	return slices.Collect(seqs.ZipWith(seq1, seq2, f))
}

// MapN applies f across aligned sequences, stopping at the shortest.
func MapN[T, R any](f func([]T) R, ss ...iter.Seq[T]) []R {
	return slices.Collect(seqs.MapN(f, ss...))
}

func Filter[T any](seq iter.Seq[T], predicate func(T) bool) []T {
	return slices.Collect(seqs.Filter(seq, predicate))
}

func Remove[T any](seq iter.Seq[T], predicate func(T) bool) []T {
	return slices.Collect(seqs.Remove(seq, predicate))
}

// Keep returns the non-zero elements of seq.
func Keep[T comparable](seq iter.Seq[T]) []T {
	return slices.Collect(seqs.Keep(seq))
}

func KeepMap[T any, R comparable](seq iter.Seq[T], transform func(T) R) []R {
	return slices.Collect(seqs.KeepMap(seq, transform))
}

func Without[T comparable](seq iter.Seq[T], items ...T) []T {
	return slices.Collect(seqs.Without(seq, items...))
}

// Distinct removes duplicates, keeping first occurrences in order.
func Distinct[T comparable](seq iter.Seq[T]) []T {
	return slices.Collect(seqs.Distinct(seq))
}

func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []T {
	return slices.Collect(seqs.DistinctBy(seq, key))
}

// ==========================================
// Try Functions (Error Handling)
// Fail fast: the first error is returned and nothing else is collected.
// ==========================================

// TryMap similar to Map, but transform may return an error.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) ([]R, error) {
	return tryCollect(seqs.TryMap(seq, transform))
}

// TryFilter similar to Filter, but predicate may return an error.
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) ([]T, error) {
	return tryCollect(seqs.TryFilter(seq, predicate))
}

func tryCollect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var res []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
