package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func anys[T any](seq iter.Seq[T]) iter.Seq[any] {
	return seqs.Map(seq, func(v T) any { return v })
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{"Nested", []any{1, []any{2, 3, []any{4}}, 5}, []any{1, 2, 3, 4, 5}},
		{"TypedSlices", []any{[]int{1, 2}, [2]string{"a", "b"}}, []any{1, 2, "a", "b"}},
		{"StringsAreLeaves", []any{"ab", []string{"cd"}}, []any{"ab", "cd"}},
		{"BytesAreLeaves", []any{[]byte("x")}, []any{[]byte("x")}},
		{"MapsAreLeaves", []any{map[string]int{"a": 1}}, []any{map[string]int{"a": 1}}},
		{"EmptyContainers", []any{[]any{}, []int{}, []any{[]any{}}}, nil},
		{"NilLeaf", []any{nil}, []any{nil}},
		{"Sources", []any{seqs.Of[any](1, []any{2})}, []any{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Flatten(slices.Values(tt.input), nil)))
		})
	}
}

func TestFlattenFollow(t *testing.T) {
	onlyAny := func(v any) bool {
		_, ok := v.([]any)
		return ok
	}

	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{"TopLevelNotFollowed", []any{[]int{1}, 2}, []any{[]int{1}, 2}},
		{"NestedUsesDefault", []any{[]any{[]int{1, 2}}}, []any{1, 2}},
		{"Mixed", []any{[]int{1}, []any{2, []any{[]int{3}}}}, []any{[]int{1}, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Flatten(slices.Values(tt.input), onlyAny)))
		})
	}
}

func TestFlattenFollowNothing(t *testing.T) {
	never := func(any) bool { return false }
	input := []any{[]any{1, 2}, "x"}
	assert.Equal(t, input, slices.Collect(seqs.Flatten(slices.Values(input), never)))
}

func TestFlattenInfiniteNested(t *testing.T) {
	input := []any{"start", anys(seqs.CountFrom(0, 1))}

	got := slices.Collect(seqs.Take(seqs.Flatten(slices.Values(input), nil), 4))
	assert.Equal(t, []any{"start", 0, 1, 2}, got)
}

func TestFlattenStopsNestedIterators(t *testing.T) {
	stopped := false
	inner := iter.Seq[any](func(yield func(any) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	for v := range seqs.Flatten(slices.Values([]any{inner}), nil) {
		if v == 2 {
			break
		}
	}
	assert.True(t, stopped)
}

func TestFlattenDeep(t *testing.T) {
	var v any = "leaf"
	for range 100_000 {
		v = []any{v}
	}
	got := slices.Collect(seqs.Flatten(slices.Values([]any{v}), nil))
	assert.Equal(t, []any{"leaf"}, got)
}

func TestIsSeqCont(t *testing.T) {
	assert.True(t, seqs.IsSeqCont([]any{}))
	assert.True(t, seqs.IsSeqCont([]int{1}))
	assert.True(t, seqs.IsSeqCont([3]int{}))
	assert.True(t, seqs.IsSeqCont(anys(seqs.Range(0, 3, 1))))
	assert.False(t, seqs.IsSeqCont("abc"))
	assert.False(t, seqs.IsSeqCont([]byte("abc")))
	assert.False(t, seqs.IsSeqCont(map[int]int{}))
	assert.False(t, seqs.IsSeqCont(42))
	assert.False(t, seqs.IsSeqCont(nil))
}
