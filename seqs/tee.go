package seqs

import (
	"iter"
	"runtime"

	"seqkit/queues"
)

// cursor is one lazily started pull over a source, shared by several views.
// The underlying iter.Pull is created on the first read and stopped when the
// source runs dry or the last view closes.
type cursor[T any] struct {
	src  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
	open int
}

func newCursor[T any](src iter.Seq[T], views int) *cursor[T] {
	return &cursor[T]{src: src, open: views}
}

func (c *cursor[T]) pull() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.src)
	}
	v, ok := c.next()
	if !ok {
		c.release()
	}
	return v, ok
}

func (c *cursor[T]) release() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
	c.done = true
}

func (c *cursor[T]) closeView() {
	c.open--
	if c.open <= 0 {
		c.release()
	}
}

// branches hands out the two single-use views of a fork. A view is closed
// when its range loop returns; ranging it again yields nothing.
type branches[T any] struct {
	cur    *cursor[T]
	used   [2]bool
	closed [2]bool
}

func newBranches[T any](src iter.Seq[T]) *branches[T] {
	return &branches[T]{cur: newCursor(src, 2)}
}

func (b *branches[T]) view(i int, next func(int) (T, bool), onClose func(int)) iter.Seq[T] {
	return func(yield func(T) bool) {
		if b.used[i] {
			return
		}
		b.used[i] = true
		defer func() {
			b.closed[i] = true
			onClose(i)
			b.cur.closeView()
		}()
		for {
			v, ok := next(i)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// releaseOnCollect stops the shared cursor once owner is garbage, so
// abandoning a view that was never ranged does not pin the source.
func releaseOnCollect[O, T any](owner *O, cur *cursor[T]) {
	runtime.AddCleanup(owner, func(c *cursor[T]) { c.release() }, cur)
}

type tee[T any] struct {
	*branches[T]
	buf *queues.ArrayQueue[T]
	// lead is the view that has read the buffered elements; the other view
	// still has to. Only meaningful while buf is not empty.
	lead int
}

// Tee forks a single-pass sequence into two independent views. Whatever one
// view reads ahead of the other is kept in a shared ring buffer until the
// slower view catches up or closes, so neither view loses elements and the
// source is read once.
//
// The views are single-use and must not be used from different goroutines.
// The source is released when both views have finished ranging, when it is
// exhausted, or once both views become unreachable.
func Tee[T any](seq iter.Seq[T]) (iter.Seq[T], iter.Seq[T]) {
	t := &tee[T]{
		branches: newBranches(seq),
		buf:      queues.NewArrayQueue[T](0),
	}
	releaseOnCollect(t, t.cur)
	return t.view(0, t.next, t.onClose), t.view(1, t.next, t.onClose)
}

func (t *tee[T]) next(i int) (T, bool) {
	if t.lead != i {
		if v, ok := t.buf.Pop(); ok {
			return v, true
		}
	}
	v, ok := t.cur.pull()
	if !ok {
		return v, false
	}
	if !t.closed[1-i] {
		t.buf.Push(v)
		t.lead = i
	}
	return v, true
}

func (t *tee[T]) onClose(i int) {
	if t.lead != i {
		t.buf.Reset()
	}
}
