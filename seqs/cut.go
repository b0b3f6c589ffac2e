package seqs

import "iter"

// Partition yields windows of exactly n elements, starting every step
// elements. A trailing window shorter than n is dropped.
//
// step < n gives overlapping windows, step == n consecutive ones and
// step > n leaves gaps. Indexed sources are cut by range extraction and the
// windows share the source's storage; other sources are read once through a
// pool of the last n elements and every window is a fresh slice.
//
// Partition panics with ErrInvalidArgument if n or step is not positive.
func Partition[T any](src Source[T], n, step int) iter.Seq[[]T] {
	checkWindow("seqs.Partition", n, step)
	return cut(src, n, step, true)
}

// Chunks is like Partition but keeps the trailing windows shorter than n.
// Every window before the first short one has exactly n elements.
func Chunks[T any](src Source[T], n, step int) iter.Seq[[]T] {
	checkWindow("seqs.Chunks", n, step)
	return cut(src, n, step, false)
}

func checkWindow(op string, n, step int) {
	if n <= 0 {
		panic(invalidArg("%s: size must be positive, got %d", op, n))
	}
	if step <= 0 {
		panic(invalidArg("%s: step must be positive, got %d", op, step))
	}
}

// poolHint caps the initial capacity of a sequential window, so a window size
// far larger than the input does not allocate up front.
const poolHint = 64

// windowEnd returns min(i+n, size) without overflowing for huge n.
func windowEnd(i, n, size int) int {
	if n < size-i {
		return i + n
	}
	return size
}

func cut[T any](src Source[T], n, step int, dropTail bool) iter.Seq[[]T] {
	if ix, ok := src.(Indexed[T]); ok {
		return cutIndexed(ix, n, step, dropTail)
	}
	return cutSequential(src.Values(), n, step, dropTail)
}

func cutIndexed[T any](ix Indexed[T], n, step int, dropTail bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		size := ix.Len()
		limit := size
		if dropTail {
			limit = size - n + 1
		}
		for i := 0; i < limit; i += step {
			if !yield(ix.Slice(i, windowEnd(i, n, size))) {
				return
			}
		}
	}
}

func cutSequential[T any](seq iter.Seq[T], n, step int, dropTail bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := make([]T, 0, min(n, poolHint))
		// elements still to be discarded before the pool fills again (step > n)
		skip := 0

		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			pool = append(pool, v)
			if len(pool) < n {
				continue
			}
			if !yield(pool) {
				return
			}
			// The yielded window now belongs to the consumer.
			next := make([]T, 0, min(n, poolHint))
			if step < n {
				next = append(next, pool[step:]...)
			} else {
				skip = step - n
			}
			pool = next
		}

		if dropTail {
			return
		}
		for i := 0; i < len(pool); i += step {
			end := windowEnd(i, n, len(pool))
			if !yield(pool[i:end:end]) {
				return
			}
		}
	}
}

// PartitionBy splits seq into runs of consecutive elements for which f
// returns the same key. Each run is yielded as soon as the element after it
// is read (or the input ends).
func PartitionBy[T any, K comparable](seq iter.Seq[T], f func(T) K) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var run []T
		var key K
		for v := range seq {
			k := f(v)
			if len(run) > 0 && k != key {
				if !yield(run) {
					return
				}
				run = nil
			}
			run = append(run, v)
			key = k
		}
		if len(run) > 0 {
			yield(run)
		}
	}
}
