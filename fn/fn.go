// Package fn turns loose arguments (sets, maps, constants, patterns) into the
// plain functions the seqs combinators take, and provides a few small
// function combinators.
//
// Each kind of argument has its own constructor, so the shape is decided by
// the caller at the call site:
//
//	seqs.Filter(words, fn.In("a", "an", "the"))
//	seqs.Map(ids, fn.Lookup(names))
//	seqs.Filter(lines, fn.MustMatch(`^\s*#`))
package fn

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func Identity[T any](v T) T { return v }

// Const returns a function ignoring its argument and returning v.
func Const[T, R any](v R) func(T) R {
	return func(T) R { return v }
}

// Constantly returns a function of any arguments that always returns v.
func Constantly[R any](v R) func(...any) R {
	return func(...any) R { return v }
}

// In returns the membership predicate of the set of vals.
func In[T comparable](vals ...T) func(T) bool {
	set := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// Lookup returns a function mapping keys through m. Missing keys map to the
// zero value.
func Lookup[K comparable, V any](m map[K]V) func(K) V {
	return func(k K) V { return m[k] }
}

// Truthy reports whether v is not the zero value of its type.
func Truthy[T comparable](v T) bool { return lo.IsNotEmpty(v) }

func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool { return !predicate(v) }
}

// Match compiles pattern into a predicate reporting whether a string contains a match.
func Match(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "fn.Match: bad pattern %q", pattern)
	}
	return re.MatchString, nil
}

// MustMatch is Match for patterns known to be valid; it panics otherwise.
func MustMatch(pattern string) func(string) bool {
	f, err := Match(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// ReFind compiles pattern into a mapper returning, for each string, the
// first submatch if the pattern has exactly one group, the whole match
// otherwise, and "" when there is no match.
func ReFind(pattern string) (func(string) string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "fn.ReFind: bad pattern %q", pattern)
	}
	if re.NumSubexp() == 1 {
		return func(s string) string {
			m := re.FindStringSubmatch(s)
			if m == nil {
				return ""
			}
			return m[1]
		}, nil
	}
	return re.FindString, nil
}
