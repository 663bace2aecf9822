package collection

import (
	"cmp"
	"slices"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeSortedAscending matches slices in non-decreasing order.
func BeSortedAscending[E cmp.Ordered]() matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			slices.IsSorted(value),
			"%v should be sorted in ascending order",
			"%v should not be sorted in ascending order",
			value,
		)
	})
}

// BeSortedDescending matches slices in non-increasing order.
func BeSortedDescending[E cmp.Ordered]() matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		sorted := slices.IsSortedFunc(value, func(a, b E) int {
			return cmp.Compare(b, a)
		})
		return matcher.Formatted(
			sorted,
			"%v should be sorted in descending order",
			"%v should not be sorted in descending order",
			value,
		)
	})
}

// BeMonotonicallyIncreasing matches slices where each element is
// greater than or equal to its predecessor.
func BeMonotonicallyIncreasing[E cmp.Ordered]() matcher.Matcher[[]E] {
	return pairwise(
		func(prev, next E) bool { return next >= prev },
		"%v should be monotonically increasing",
		"%v should not be monotonically increasing",
	)
}

// BeMonotonicallyDecreasing matches slices where each element is
// less than or equal to its predecessor.
func BeMonotonicallyDecreasing[E cmp.Ordered]() matcher.Matcher[[]E] {
	return pairwise(
		func(prev, next E) bool { return next <= prev },
		"%v should be monotonically decreasing",
		"%v should not be monotonically decreasing",
	)
}

// BeStrictlyIncreasing matches slices where each element is
// greater than its predecessor.
func BeStrictlyIncreasing[E cmp.Ordered]() matcher.Matcher[[]E] {
	return pairwise(
		func(prev, next E) bool { return next > prev },
		"%v should be strictly increasing",
		"%v should not be strictly increasing",
	)
}

// BeStrictlyDecreasing matches slices where each element is less
// than its predecessor.
func BeStrictlyDecreasing[E cmp.Ordered]() matcher.Matcher[[]E] {
	return pairwise(
		func(prev, next E) bool { return next < prev },
		"%v should be strictly decreasing",
		"%v should not be strictly decreasing",
	)
}

func pairwise[E any](
	holds func(prev, next E) bool,
	format, negatedFormat string,
) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		ok := true
		for i := 1; i < len(value); i++ {
			if !holds(value[i-1], value[i]) {
				ok = false
				break
			}
		}
		return matcher.Formatted(ok, format, negatedFormat, value)
	})
}
