package seqs

import (
	"iter"
	"math/rand/v2"
)

// Empty is the sequence with no elements.
func Empty[T any](func(T) bool) {}

// RandomInts generates a sequence of random integers of the specified size.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// CountFrom yields start, start+step, start+2*step, ... without end.
func CountFrom(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// RepeatForever yields value without end.
func RepeatForever[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(value) {
		}
	}
}

// Cycle yields the elements of seq over and over. The first pass is recorded
// so seq is only read once; an empty seq gives an empty result.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range seq {
			seen = append(seen, v)
			if !yield(v) {
				return
			}
		}
		if len(seen) == 0 {
			return
		}
		for {
			for _, v := range seen {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Repeatedly yields the results of calling f, without end.
func Repeatedly[T any](f func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(f()) {
		}
	}
}

// Iterate yields x, f(x), f(f(x)), ...
func Iterate[T any](x T, f func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := x; yield(v); v = f(v) {
		}
	}
}
