package seqs

import (
	"iter"
	"maps"
)

// Groups is a map that remembers the order in which keys were first added.
type Groups[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

func newGroups[K comparable, V any]() *Groups[K, V] {
	return &Groups[K, V]{m: make(map[K]V)}
}

// update applies f to the value stored under k (the zero value for a new key).
func (g *Groups[K, V]) update(k K, f func(V) V) {
	v, ok := g.m[k]
	if !ok {
		g.keys = append(g.keys, k)
	}
	g.m[k] = f(v)
}

// Keys returns the keys in first-seen order. The slice must not be modified.
func (g *Groups[K, V]) Keys() []K { return g.keys }

func (g *Groups[K, V]) Get(k K) (V, bool) {
	v, ok := g.m[k]
	return v, ok
}

func (g *Groups[K, V]) Len() int { return len(g.keys) }

// All yields key/value pairs in first-seen key order.
func (g *Groups[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range g.keys {
			if !yield(k, g.m[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the groups as a plain map.
func (g *Groups[K, V]) Map() map[K]V { return maps.Clone(g.m) }

// GroupBy collects the elements of seq under key(v). Elements keep their
// input order within a group and groups are ordered by the first appearance
// of their key.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, []T] {
	g := newGroups[K, []T]()
	for v := range seq {
		g.update(key(v), func(group []T) []T { return append(group, v) })
	}
	return g
}

// GroupByKeys is GroupBy for elements that belong to several groups: v is
// appended to the group of every key keys(v) returns.
func GroupByKeys[T any, K comparable](seq iter.Seq[T], keys func(T) []K) *Groups[K, []T] {
	g := newGroups[K, []T]()
	for v := range seq {
		for _, k := range keys(v) {
			g.update(k, func(group []T) []T { return append(group, v) })
		}
	}
	return g
}

// CountBy counts the elements of seq per key(v).
func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, int] {
	g := newGroups[K, int]()
	for v := range seq {
		g.update(key(v), func(n int) int { return n + 1 })
	}
	return g
}
