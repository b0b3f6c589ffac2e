package seqs_test

import (
	"iter"
	"slices"
)

// counted wraps a slice and reports how many elements have been read.
func counted[T any](values []T) (iter.Seq[T], *int) {
	n := new(int)
	return func(yield func(T) bool) {
		for _, v := range values {
			*n++
			if !yield(v) {
				return
			}
		}
	}, n
}

// once returns a sequence that panics if ranged a second time.
func once[T any](values ...T) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			panic("single-pass source ranged twice")
		}
		used = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func collect2[K, V any](seq iter.Seq2[K, V]) ([]K, []V) {
	var ks []K
	var vs []V
	for k, v := range seq {
		ks = append(ks, k)
		vs = append(vs, v)
	}
	return ks, vs
}

func ints(n int) []int {
	return slices.Collect(func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	})
}
