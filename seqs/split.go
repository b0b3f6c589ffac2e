package seqs

import (
	"iter"

	"seqkit/queues"
)

type splitter[T any] struct {
	*branches[T]
	predicate func(T) bool
	// pending[0] waits for the matching view, pending[1] for the other one.
	pending [2]*queues.ArrayQueue[T]
}

// Split returns two views over seq: elements satisfying predicate and the
// rest, each in input order. The views may be consumed in any interleaving
// (for instance through iter.Pull); reading one view pulls only as much of
// seq as it needs and parks the elements meant for the other view until
// that view reads them. predicate runs exactly once per element.
//
// The views follow the same lifetime rules as Tee.
func Split[T any](seq iter.Seq[T], predicate func(T) bool) (yes, no iter.Seq[T]) {
	s := &splitter[T]{
		branches:  newBranches(seq),
		predicate: predicate,
		pending:   [2]*queues.ArrayQueue[T]{queues.NewArrayQueue[T](0), queues.NewArrayQueue[T](0)},
	}
	releaseOnCollect(s, s.cur)
	return s.view(0, s.next, s.onClose), s.view(1, s.next, s.onClose)
}

func (s *splitter[T]) next(i int) (T, bool) {
	if v, ok := s.pending[i].Pop(); ok {
		return v, true
	}
	for {
		v, ok := s.cur.pull()
		if !ok {
			return v, false
		}
		side := 1
		if s.predicate(v) {
			side = 0
		}
		if side == i {
			return v, true
		}
		if !s.closed[side] {
			s.pending[side].Push(v)
		}
	}
}

func (s *splitter[T]) onClose(i int) {
	s.pending[i].Reset()
}

// SplitAt returns the first n elements of seq and everything after them.
// Both halves read the same pass over seq through Tee.
func SplitAt[T any](seq iter.Seq[T], n int) (head, tail iter.Seq[T]) {
	if n <= 0 {
		return Empty[T], seq
	}
	a, b := Tee(seq)
	return Take(a, n), Drop(b, n)
}

// SplitBy returns the longest prefix of seq whose elements satisfy predicate
// and the remainder starting at the first element that does not.
//
// The halves are TakeWhile and DropWhile over a Tee of seq, so predicate is
// evaluated independently by each half: an element of the prefix may be
// tested twice. Use a pure predicate, or Split/SplitAt if side effects must
// happen once.
func SplitBy[T any](seq iter.Seq[T], predicate func(T) bool) (head, tail iter.Seq[T]) {
	a, b := Tee(seq)
	return TakeWhile(a, predicate), DropWhile(b, predicate)
}
