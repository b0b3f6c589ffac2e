package seqs

import (
	"iter"

	"github.com/samber/lo"
)

// Remove yields the elements for which predicate is false.
func Remove[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !predicate(v) })
}

// Keep drops zero values ("", 0, nil, false, ...) and yields the rest.
func Keep[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return Filter(seq, lo.IsNotEmpty[T])
}

// KeepMap applies transform and yields only the non-zero results.
func KeepMap[T any, R comparable](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return Keep(Map(seq, transform))
}

// Without yields the elements not equal to any of items, in order.
func Without[T comparable](seq iter.Seq[T], items ...T) iter.Seq[T] {
	if len(items) == 0 {
		return seq
	}
	return Filter(seq, func(v T) bool { return !lo.Contains(items, v) })
}

// Distinct returns a sequence that yields only unique elements, in order of first occurrence.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// DistinctBy is like Distinct but compares elements by key(v).
// The first element seen for each key is the one yielded.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
