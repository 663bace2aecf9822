package matcher

// Matcher tests a value of type T and reports a Verdict.
// Implementations must be free of side effects visible to the
// caller and idempotent: testing the same value twice yields the
// same Verdict. A failed match is Passed == false, never a panic.
type Matcher[T any] interface {
	Test(value T) Verdict
}

// Func adapts an ordinary function to the Matcher interface.
type Func[T any] func(value T) Verdict

// Test calls f(value).
func (f Func[T]) Test(value T) Verdict {
	return f(value)
}

// New creates a Matcher from a boolean predicate and a fixed
// message pair.
func New[T any](
	predicate func(T) bool,
	failure, negated string,
) Matcher[T] {
	return Func[T](func(value T) Verdict {
		return NewVerdict(predicate(value), failure, negated)
	})
}

// Should reports whether value satisfies m.
func Should[T any](value T, m Matcher[T]) bool {
	return m.Test(value).Passed
}

// ShouldNot reports whether value does not satisfy m.
func ShouldNot[T any](value T, m Matcher[T]) bool {
	return !m.Test(value).Passed
}
