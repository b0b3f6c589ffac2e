package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Addable is every type the + operator works on.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

func Sum[T Addable](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func add[T Addable](a, b T) T { return a + b }

// Sums yields the running totals of seq. See Reductions for the empty case.
func Sums[T Addable](seq iter.Seq[T]) iter.Seq2[T, error] {
	return Reductions(seq, add[T])
}
