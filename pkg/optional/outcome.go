package optional

import "digital.vasic.clearcheck/pkg/matcher"

// Outcome pairs a value with the error returned alongside it, the
// usual shape of a fallible Go call.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Of captures the two results of a fallible call:
//
//	optional.Of(strconv.Atoi("42"))
func Of[T any](value T, err error) Outcome[T] {
	return Outcome[T]{Value: value, Err: err}
}

// BeOk matches outcomes without an error.
func BeOk[T any]() matcher.Matcher[Outcome[T]] {
	return matcher.Func[Outcome[T]](func(o Outcome[T]) matcher.Verdict {
		return matcher.Formatted(
			o.Err == nil,
			"Result value should be ok, got error %v",
			"Result value should not be ok, got error %v",
			o.Err,
		)
	})
}

// BeErr matches outcomes carrying an error.
func BeErr[T any]() matcher.Matcher[Outcome[T]] {
	return matcher.Func[Outcome[T]](func(o Outcome[T]) matcher.Verdict {
		return matcher.Formatted(
			o.Err != nil,
			"Result value should be error, got error %v",
			"Result value should not be error, got error %v",
			o.Err,
		)
	})
}

// SatisfyOk matches successful outcomes whose value is accepted by
// predicate.
func SatisfyOk[T any](predicate func(T) bool) matcher.Matcher[Outcome[T]] {
	return matcher.New(
		func(o Outcome[T]) bool { return o.Err == nil && predicate(o.Value) },
		"Result value should satisfy the given predicate",
		"Result value should not satisfy the given predicate",
	)
}
