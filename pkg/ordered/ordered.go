// Package ordered provides leaf matchers over ordered values:
// comparisons, ranges, and sign/parity checks for numbers.
package ordered

import (
	"cmp"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeGreaterThan matches values strictly greater than other.
func BeGreaterThan[T cmp.Ordered](other T) matcher.Matcher[T] {
	return compare(
		other,
		func(c int) bool { return c > 0 },
		"%v should be greater than %v",
		"%v should not be greater than %v",
	)
}

// BeGreaterThanOrEqual matches values greater than or equal to
// other.
func BeGreaterThanOrEqual[T cmp.Ordered](other T) matcher.Matcher[T] {
	return compare(
		other,
		func(c int) bool { return c >= 0 },
		"%v should be greater than equals to %v",
		"%v should not be greater than equals to %v",
	)
}

// BeLessThan matches values strictly less than other.
func BeLessThan[T cmp.Ordered](other T) matcher.Matcher[T] {
	return compare(
		other,
		func(c int) bool { return c < 0 },
		"%v should be less than %v",
		"%v should not be less than %v",
	)
}

// BeLessThanOrEqual matches values less than or equal to other.
func BeLessThanOrEqual[T cmp.Ordered](other T) matcher.Matcher[T] {
	return compare(
		other,
		func(c int) bool { return c <= 0 },
		"%v should be less than equals to %v",
		"%v should not be less than equals to %v",
	)
}

func compare[T cmp.Ordered](
	other T,
	accept func(c int) bool,
	format, negatedFormat string,
) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Verdict {
		return matcher.Formatted(
			accept(cmp.Compare(value, other)),
			format, negatedFormat,
			value, other,
		)
	})
}
