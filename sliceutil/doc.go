// Package sliceutil holds the eager forms of the seqs combinators.
//
// Each function drains the lazy combinator of the same name into a slice
// (or a pair of slices), so the input must be finite. There is no logic here
// beyond collecting: sliceutil.X(args) == slices.Collect(seqs.X(args)).
package sliceutil
