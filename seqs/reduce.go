package seqs

import (
	"iter"

	"github.com/pkg/errors"
)

// Reductions yields the successive results of folding seq with f, using the
// first element as the seed. The seed itself is the first value yielded.
//
// An empty seq has nothing to seed the fold with: the sequence then yields a
// single (zero, ErrEmpty) pair. Every other pair carries a nil error.
func Reductions[T any](seq iter.Seq[T], f func(T, T) T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var acc T
		seeded := false
		for v := range seq {
			if seeded {
				acc = f(acc, v)
			} else {
				acc, seeded = v, true
			}
			if !yield(acc, nil) {
				return
			}
		}
		if !seeded {
			var zero T
			yield(zero, errors.WithStack(ErrEmpty))
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
// initial is the seed and is not yielded on its own, so an empty seq gives an
// empty result.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// WithPrev pairs each element with the one before it. The first element is
// paired with fill.
//
//	for prev, cur := range seqs.WithPrev(s, fill) { ... }
func WithPrev[T any](seq iter.Seq[T], fill T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		prev := fill
		for v := range seq {
			if !yield(prev, v) {
				return
			}
			prev = v
		}
	}
}

// Pairwise yields every element together with its successor. The final
// element has no successor and is not yielded on its own.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		started := false
		for v := range seq {
			if started && !yield(prev, v) {
				return
			}
			prev, started = v, true
		}
	}
}
