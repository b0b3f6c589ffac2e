/*
Package seqs provides lazy combinators over Go 1.23+ iterators (iter.Seq).

Every function that returns an iter.Seq reads its input on demand, so it works
on unbounded sources as long as the consumer stops at some point. Eager
versions returning slices live in package sliceutil and are always
slices.Collect of the function here.

  - **Accessors**: [First], [Second], [Nth], [Last], [Take], [Drop], [Rest], [ButLast], [Count].
  - **Mapping and filtering**: [Map], [ZipWith], [MapN], [Filter], [Remove], [Keep], [KeepMap],
    [Without], [Distinct], [DistinctBy].
  - **Concatenation**: [Concat], [Cat], [FlatMap], [Flatten], [Interleave], [Interpose].
  - **Cutting**: [Partition], [Chunks], [PartitionBy].
  - **Splitting**: [Split], [SplitAt], [SplitBy], [Tee].
  - **Grouping**: [GroupBy], [GroupByKeys], [CountBy].
  - **Running reductions**: [Reductions], [Scan], [Sums], [WithPrev], [Pairwise].

# Sources

[Partition], [Chunks] and [Last] take a [Source] instead of a bare iterator so
they can tell whether the input is [Indexed]. Wrap a slice with [Slice] (or
[Of]) to get O(1) windows, or an iterator with [Seq] for a single buffered pass:

	seqs.Partition[int](seqs.Slice[int](xs), 3, 1)
	seqs.Partition[int](seqs.Seq[int](lines), 3, 1)

# Forks

[Tee], [Split], [SplitAt] and [SplitBy] return two views over one pass of
their input. Elements read by one view and not yet by the other are buffered;
the buffer for a view is dropped as soon as that view's range loop ends.
Views are single-use and not safe for concurrent use.

# Errors

Caller mistakes (a non-positive window size, a negative index) panic with an
error wrapping [ErrInvalidArgument] when the combinator is called. Folding an
empty sequence without a seed yields [ErrEmpty] from [Reductions] and [Sums].
*/
package seqs
