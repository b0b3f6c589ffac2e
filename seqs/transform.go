package seqs

import "iter"

// FlatMap maps each element to a sequence and concatenates the results.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func TryFlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for s := range source {
			for t, err := range f(s) {
				if !yield(t, err) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return Cat(func(yield func(iter.Seq[T]) bool) {
		for _, seq := range seqs {
			if !yield(seq) {
				return
			}
		}
	})
}

// Cat concatenates a sequence of sequences. The outer sequence is read lazily,
// so it may be infinite.
func Cat[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return ZipWith(seq1, seq2, func(v1 T1, v2 T2) Pair[T1, T2] {
		return Pair[T1, T2]{v1, v2}
	})
}

// ZipWith applies f to the elements of seq1 and seq2 in lockstep and stops
// with the shorter one.
func ZipWith[T1, T2, R any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], f func(T1, T2) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(f(v1, v2)) {
				return
			}
		}
	}
}

// MapN calls f with one element from each sequence per step, stopping as soon
// as any sequence runs out. The slice passed to f is reused between calls.
func MapN[T, R any](f func([]T) R, seqs ...iter.Seq[T]) iter.Seq[R] {
	return func(yield func(R) bool) {
		if len(seqs) == 0 {
			return
		}
		for row := range lockstep(seqs) {
			if !yield(f(row)) {
				return
			}
		}
	}
}

// lockstep yields one full row per step across all seqs. A row is only
// yielded when every sequence produced an element for it.
func lockstep[T any](seqs []iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		row := make([]T, len(seqs))
		for {
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// ZipLongest zips two sequences together.
// When one sequence is exhausted, it continues with the fill values.
// use fill1 and fill2 to fill in the missing values from seq1 and seq2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Interleave yields the first element of every sequence, then the second of
// every sequence, and so on. It stops at the first round some sequence cannot
// complete; that round's already-read elements are dropped.
func Interleave[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(seqs) == 0 {
			return
		}
		for row := range lockstep(seqs) {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Interpose yields sep between every two adjacent elements of seq.
func Interpose[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}
