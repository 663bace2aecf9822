package strmatch

import (
	"unicode/utf8"

	"digital.vasic.clearcheck/pkg/matcher"
)

// HaveLength matches strings of exactly length runes.
func HaveLength(length int) matcher.Matcher[string] {
	return lengthMatcher(
		func(n int) bool { return n == length },
		"%q should have length %d",
		"%q should not have length %d",
		length,
	)
}

// HaveAtLeastLength matches strings of at least length runes.
func HaveAtLeastLength(length int) matcher.Matcher[string] {
	return lengthMatcher(
		func(n int) bool { return n >= length },
		"%q should have at least length %d",
		"%q should not have at least length %d",
		length,
	)
}

// HaveAtMostLength matches strings of at most length runes.
func HaveAtMostLength(length int) matcher.Matcher[string] {
	return lengthMatcher(
		func(n int) bool { return n <= length },
		"%q should have at most length %d",
		"%q should not have at most length %d",
		length,
	)
}

// HaveLengthInRange matches strings whose rune count lies in the
// inclusive range [lo, hi].
func HaveLengthInRange(lo, hi int) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		n := utf8.RuneCountInString(value)
		return matcher.Formatted(
			n >= lo && n <= hi,
			"%q should have length in range [%d, %d]",
			"%q should not have length in range [%d, %d]",
			value, lo, hi,
		)
	})
}

func lengthMatcher(
	accept func(n int) bool,
	format, negatedFormat string,
	length int,
) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			accept(utf8.RuneCountInString(value)),
			format, negatedFormat,
			value, length,
		)
	})
}
