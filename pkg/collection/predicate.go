package collection

import (
	"slices"

	"digital.vasic.clearcheck/pkg/matcher"
)

// SatisfyForAny matches slices with at least one element accepted
// by predicate.
func SatisfyForAny[E any](predicate func(E) bool) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			slices.ContainsFunc(value, predicate),
			"%v should satisfy the given predicate for any of the elements",
			"%v should not satisfy the given predicate for any of the elements",
			value,
		)
	})
}

// SatisfyForAll matches slices whose every element is accepted by
// predicate.
func SatisfyForAll[E any](predicate func(E) bool) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		rejected := slices.ContainsFunc(value, func(e E) bool {
			return !predicate(e)
		})
		return matcher.Formatted(
			!rejected,
			"%v should satisfy the given predicate for all the elements",
			"%v should not satisfy the given predicate for all the elements",
			value,
		)
	})
}
