package matcher

// Behavior pairs a Matcher with an inversion flag. It is the unit
// a Builder accumulates and a Composite evaluates.
type Behavior[T any] struct {
	matcher  Matcher[T]
	inverted bool
}

// Positive wraps m so that its Verdict is reported unchanged.
func Positive[T any](m Matcher[T]) Behavior[T] {
	return Behavior[T]{matcher: m}
}

// Inverted wraps m so that its Verdict is negated and its
// messages swapped.
func Inverted[T any](m Matcher[T]) Behavior[T] {
	return Behavior[T]{matcher: m, inverted: true}
}

// Test evaluates the wrapped matcher against value.
func (b Behavior[T]) Test(value T) Verdict {
	v := b.matcher.Test(value)
	if b.inverted {
		return v.Invert()
	}
	return v
}

// IsInverted reports whether b negates its matcher.
func (b Behavior[T]) IsInverted() bool {
	return b.inverted
}

// Not returns a Matcher that inverts m.
func Not[T any](m Matcher[T]) Matcher[T] {
	return Inverted(m)
}
