package collection

import (
	"cmp"
	"slices"

	"digital.vasic.clearcheck/pkg/matcher"
)

// HaveMin matches non-empty slices whose smallest element is want.
func HaveMin[E cmp.Ordered](want E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		ok := len(value) > 0 && slices.Min(value) == want
		return matcher.Formatted(
			ok,
			"%v should have %v as the minimum element",
			"%v should not have %v as the minimum element",
			value, want,
		)
	})
}

// HaveMax matches non-empty slices whose largest element is want.
func HaveMax[E cmp.Ordered](want E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		ok := len(value) > 0 && slices.Max(value) == want
		return matcher.Formatted(
			ok,
			"%v should have %v as the maximum element",
			"%v should not have %v as the maximum element",
			value, want,
		)
	})
}

// HaveUpperBound matches slices in which no element exceeds bound.
func HaveUpperBound[E cmp.Ordered](bound E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		ok := !slices.ContainsFunc(value, func(e E) bool {
			return e > bound
		})
		return matcher.Formatted(
			ok,
			"%v should have an upper bound %v",
			"%v should not have an upper bound %v",
			value, bound,
		)
	})
}

// HaveLowerBound matches slices in which no element is below
// bound.
func HaveLowerBound[E cmp.Ordered](bound E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		ok := !slices.ContainsFunc(value, func(e E) bool {
			return e < bound
		})
		return matcher.Formatted(
			ok,
			"%v should have a lower bound %v",
			"%v should not have a lower bound %v",
			value, bound,
		)
	})
}
