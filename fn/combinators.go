package fn

// Partial fixes the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Curry turns a two-argument function into a chain of one-argument ones.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return Partial(f, a)
	}
}

// Curry3 is Curry for three arguments.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry(func(b B, c C) R { return f(a, b, c) })
	}
}

// Caller returns a function that calls its argument with arg.
func Caller[A, R any](arg A) func(func(A) R) R {
	return func(f func(A) R) R { return f(arg) }
}

// Iffy returns a function applying action to values satisfying predicate
// and fallback to the others. A nil fallback returns them unchanged.
func Iffy[T any](predicate func(T) bool, action, fallback func(T) T) func(T) T {
	if fallback == nil {
		fallback = Identity[T]
	}
	return func(v T) T {
		if predicate(v) {
			return action(v)
		}
		return fallback(v)
	}
}
