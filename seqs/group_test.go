package seqs_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func TestGroupBy(t *testing.T) {
	words := []string{"pear", "fig", "apple", "kiwi", "plum", "banana"}
	g := seqs.GroupBy(slices.Values(words), func(s string) int { return len(s) })

	assert.Equal(t, []int{4, 3, 5, 6}, g.Keys())
	assert.Equal(t, 4, g.Len())

	four, ok := g.Get(4)
	assert.True(t, ok)
	assert.Equal(t, []string{"pear", "kiwi", "plum"}, four)

	_, ok = g.Get(7)
	assert.False(t, ok)

	keys, groups := collect2(g.All())
	assert.Equal(t, g.Keys(), keys)
	assert.Equal(t, [][]string{{"pear", "kiwi", "plum"}, {"fig"}, {"apple"}, {"banana"}}, groups)

	// every element lands in exactly one group
	total := 0
	for _, group := range g.Map() {
		total += len(group)
	}
	assert.Equal(t, len(words), total)
}

func TestGroupByEmpty(t *testing.T) {
	g := seqs.GroupBy(seqs.Empty[int], func(x int) int { return x })
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Map())
}

func TestGroupByKeys(t *testing.T) {
	tags := map[string][]string{
		"gopher": {"go", "animal"},
		"python": {"animal", "language"},
		"rust":   {"language"},
	}
	g := seqs.GroupByKeys(slices.Values([]string{"gopher", "python", "rust"}), func(s string) []string {
		return tags[s]
	})

	assert.Equal(t, []string{"go", "animal", "language"}, g.Keys())
	animals, _ := g.Get("animal")
	assert.Equal(t, []string{"gopher", "python"}, animals)
	languages, _ := g.Get("language")
	assert.Equal(t, []string{"python", "rust"}, languages)
}

func TestCountBy(t *testing.T) {
	g := seqs.CountBy(slices.Values(strings.Split("a b a c b a", " ")), func(s string) string { return s })

	assert.Equal(t, []string{"a", "b", "c"}, g.Keys())
	assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 1}, g.Map())
}

func TestGroupsMapIsACopy(t *testing.T) {
	g := seqs.CountBy(slices.Values([]int{1, 1}), func(x int) int { return x })
	m := g.Map()
	m[1] = 100
	n, _ := g.Get(1)
	assert.Equal(t, 2, n)
}
