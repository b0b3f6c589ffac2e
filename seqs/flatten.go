package seqs

import (
	"iter"
	"reflect"
)

// IsSeqCont reports whether v is a container Flatten descends into by default:
// any slice or array except []byte, an iter.Seq[any] or a Source[any].
// Strings, maps and every other value are leaves.
func IsSeqCont(v any) bool {
	switch v.(type) {
	case nil, string, []byte:
		return false
	case []any, iter.Seq[any], Source[any]:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

type flattenFrame struct {
	next func() (any, bool)
	stop func()
}

func noop() {}

// openContainer returns a cursor over the children of v, or false if v is
// not something Flatten knows how to walk.
func openContainer(v any) (flattenFrame, bool) {
	switch c := v.(type) {
	case []any:
		i := 0
		return flattenFrame{
			next: func() (any, bool) {
				if i >= len(c) {
					return nil, false
				}
				i++
				return c[i-1], true
			},
			stop: noop,
		}, true
	case iter.Seq[any]:
		next, stop := iter.Pull(c)
		return flattenFrame{next, stop}, true
	case Source[any]:
		next, stop := iter.Pull(c.Values())
		return flattenFrame{next, stop}, true
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return flattenFrame{}, false
	}
	i := 0
	return flattenFrame{
		next: func() (any, bool) {
			if i >= rv.Len() {
				return nil, false
			}
			i++
			return rv.Index(i - 1).Interface(), true
		},
		stop: noop,
	}, true
}

// Flatten yields the leaves of arbitrarily nested sequences, depth first.
// follow decides whether an element of seq itself is descended into; nil
// means IsSeqCont. Below the top level, containers are always recognised by
// IsSeqCont. Nesting is tracked on an explicit stack rather than by
// recursion, so deep inputs do not grow the goroutine stack, and nested
// iterators may be infinite.
func Flatten(seq iter.Seq[any], follow func(any) bool) iter.Seq[any] {
	if follow == nil {
		follow = IsSeqCont
	}
	return func(yield func(any) bool) {
		var stack []flattenFrame
		defer func() {
			for _, f := range stack {
				f.stop()
			}
		}()

		// emit yields v or pushes it as a new frame.
		emit := func(v any, descend func(any) bool) bool {
			if descend(v) {
				if f, ok := openContainer(v); ok {
					stack = append(stack, f)
					return true
				}
			}
			return yield(v)
		}

		for item := range seq {
			if !emit(item, follow) {
				return
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				v, ok := top.next()
				if !ok {
					top.stop()
					stack = stack[:len(stack)-1]
					continue
				}
				if !emit(v, IsSeqCont) {
					return
				}
			}
		}
	}
}
