package seqs_test

import (
	"strconv"
	"testing"

	"seqkit/seqs"
)

// BenchmarkPartition compares cutting an indexed source with cutting the same
// elements through the sequential pool.
func BenchmarkPartition(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	for _, step := range []int{1, 16, 64} {
		b.Run("Indexed/"+strconv.Itoa(step), func(b *testing.B) {
			for b.Loop() {
				for range seqs.Partition[int](seqs.Slice[int](input), 16, step) {
				}
			}
		})
		b.Run("Sequential/"+strconv.Itoa(step), func(b *testing.B) {
			for b.Loop() {
				for range seqs.Partition[int](seqs.Seq[int](seqs.Slice[int](input).Values()), 16, step) {
				}
			}
		})
	}
}

// BenchmarkSplit measures the cost of parking elements for the other view.
func BenchmarkSplit(b *testing.B) {
	even := func(x int) bool { return x%2 == 0 }

	b.Run("YesThenNo", func(b *testing.B) {
		for b.Loop() {
			yes, no := seqs.Split(seqs.Range(0, 10_000, 1), even)
			for range yes {
			}
			for range no {
			}
		}
	})

	b.Run("Interleaved", func(b *testing.B) {
		for b.Loop() {
			yes, no := seqs.Split(seqs.Range(0, 10_000, 1), even)
			for range seqs.Interleave(yes, no) {
			}
		}
	})
}
