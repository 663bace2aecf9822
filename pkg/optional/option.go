// Package optional provides leaf matchers over optional values
// (pointers, where nil means absent) and over (value, error)
// outcomes.
package optional

import "digital.vasic.clearcheck/pkg/matcher"

// BeNone matches nil pointers.
func BeNone[T any]() matcher.Matcher[*T] {
	return matcher.New(
		func(v *T) bool { return v == nil },
		"Option value should be none",
		"Option value should not be none",
	)
}

// BeSome matches non-nil pointers.
func BeSome[T any]() matcher.Matcher[*T] {
	return matcher.New(
		func(v *T) bool { return v != nil },
		"Option value should be some",
		"Option value should not be some",
	)
}

// SatisfySome matches non-nil pointers whose pointee is accepted
// by predicate.
func SatisfySome[T any](predicate func(T) bool) matcher.Matcher[*T] {
	return matcher.New(
		func(v *T) bool { return v != nil && predicate(*v) },
		"Option value should satisfy the given predicate",
		"Option value should not satisfy the given predicate",
	)
}
