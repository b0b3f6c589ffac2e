package seqs_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func TestFilterRemove(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}
	even := func(x int) bool { return x%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, slices.Collect(seqs.Filter(slices.Values(input), even)))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(seqs.Remove(slices.Values(input), even)))
}

func TestKeep(t *testing.T) {
	t.Run("DropsZeroValues", func(t *testing.T) {
		got := slices.Collect(seqs.Keep(slices.Values([]string{"a", "", "b", ""})))
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("KeepMap", func(t *testing.T) {
		input := []string{"x=1", "y", "z=3"}
		got := slices.Collect(seqs.KeepMap(slices.Values(input), func(s string) string {
			_, v, _ := strings.Cut(s, "=")
			return v
		}))
		assert.Equal(t, []string{"1", "3"}, got)
	})
}

func TestWithout(t *testing.T) {
	got := slices.Collect(seqs.Without(slices.Values([]int{1, 2, 3, 2, 4}), 2, 4))
	assert.Equal(t, []int{1, 3}, got)

	got = slices.Collect(seqs.Without(slices.Values([]int{1, 2})))
	assert.Equal(t, []int{1, 2}, got)
}

func TestDistinct(t *testing.T) {
	input := []int{3, 1, 3, 2, 1, 4}

	t.Run("FirstOccurrenceOrder", func(t *testing.T) {
		assert.Equal(t, []int{3, 1, 2, 4}, slices.Collect(seqs.Distinct(slices.Values(input))))
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := slices.Collect(seqs.Distinct(slices.Values(input)))
		twice := slices.Collect(seqs.Distinct(seqs.Distinct(slices.Values(input))))
		assert.Equal(t, first, twice)
	})

	t.Run("Infinite", func(t *testing.T) {
		got := slices.Collect(seqs.Take(seqs.Distinct(seqs.Cycle(slices.Values([]int{1, 2, 1, 3}))), 3))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("By", func(t *testing.T) {
		words := []string{"apple", "Avocado", "banana", "Blueberry", "cherry"}
		got := slices.Collect(seqs.DistinctBy(slices.Values(words), func(s string) string {
			return strings.ToLower(s[:1])
		}))
		assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
	})
}
