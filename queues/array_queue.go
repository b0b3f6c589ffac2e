// Package queues holds the FIFO buffers shared by forked sequence views.
package queues

import "math/bits"

const defaultCapacity = 8

// ArrayQueue is a growable FIFO backed by a power-of-two ring buffer.
// It holds elements one reader has pulled from a source but another reader
// has not consumed yet, so it favours cheap Push/Pop and releasing memory
// once the backlog is gone.
type ArrayQueue[T any] struct {
	buf  []T
	head int
	size int
	mask int
}

// NewArrayQueue returns an empty queue able to hold capacity elements before growing.
func NewArrayQueue[T any](capacity int) *ArrayQueue[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	c := roundUp(capacity)
	return &ArrayQueue[T]{buf: make([]T, c), mask: c - 1}
}

func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow re-lays the ring out from index 0 into a buffer of at least want slots.
func (q *ArrayQueue[T]) grow(want int) {
	c := roundUp(want)
	next := make([]T, c)
	if q.head+q.size <= len(q.buf) {
		copy(next, q.buf[q.head:q.head+q.size])
	} else {
		n := copy(next, q.buf[q.head:])
		copy(next[n:], q.buf[:(q.head+q.size)&q.mask])
	}
	q.buf = next
	q.head = 0
	q.mask = c - 1
}

// Push appends v at the back.
func (q *ArrayQueue[T]) Push(v T) {
	if q.size == len(q.buf) {
		q.grow(q.size + 1)
	}
	q.buf[(q.head+q.size)&q.mask] = v
	q.size++
}

// Pop removes and returns the front element.
func (q *ArrayQueue[T]) Pop() (v T, ok bool) {
	if q.size == 0 {
		return v, false
	}
	v = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) & q.mask
	q.size--
	return v, true
}

// Reset drops every element and shrinks the ring back to its default size,
// handing the old backing array to the GC.
func (q *ArrayQueue[T]) Reset() {
	q.buf = make([]T, defaultCapacity)
	q.head = 0
	q.size = 0
	q.mask = defaultCapacity - 1
}
