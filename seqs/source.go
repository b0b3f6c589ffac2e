package seqs

import (
	"iter"
	"slices"
)

// Source is a sequence that can be read front to back.
type Source[T any] interface {
	Values() iter.Seq[T]
}

// Indexed is a Source that also knows its length and can hand out a
// sub-range without walking the elements before it. Combinators that cut
// sequences into windows use this to avoid buffering.
type Indexed[T any] interface {
	Source[T]
	Len() int
	// Slice returns elements [i, j). The result may share storage with the source.
	Slice(i, j int) []T
}

// Slice adapts a slice to Indexed.
type Slice[T any] []T

func (s Slice[T]) Values() iter.Seq[T] { return slices.Values(s) }

func (s Slice[T]) Len() int { return len(s) }

// Slice returns s[i:j] with its capacity clipped, so appending to a window
// never writes into the next one.
func (s Slice[T]) Slice(i, j int) []T { return s[i:j:j] }

// Seq adapts a plain iterator to Source. It is sequential only.
type Seq[T any] iter.Seq[T]

func (s Seq[T]) Values() iter.Seq[T] { return iter.Seq[T](s) }

// Of returns a Source for a fixed list of values.
func Of[T any](values ...T) Slice[T] { return Slice[T](values) }
