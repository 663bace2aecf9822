package ordered

import (
	"cmp"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeInRange matches values in the inclusive range [lo, hi].
func BeInRange[T cmp.Ordered](lo, hi T) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Verdict {
		return matcher.Formatted(
			cmp.Compare(value, lo) >= 0 && cmp.Compare(value, hi) <= 0,
			"%v should fall in the range [%v, %v]",
			"%v should not fall in the range [%v, %v]",
			value, lo, hi,
		)
	})
}

// BeInExclusiveRange matches values in the half-open range
// [lo, hi).
func BeInExclusiveRange[T cmp.Ordered](lo, hi T) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Verdict {
		return matcher.Formatted(
			cmp.Compare(value, lo) >= 0 && cmp.Compare(value, hi) < 0,
			"%v should fall in the range [%v, %v)",
			"%v should not fall in the range [%v, %v)",
			value, lo, hi,
		)
	})
}
