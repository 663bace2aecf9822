// Package boolmatch provides leaf matchers over booleans and
// runes.
package boolmatch

import (
	"unicode"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeTrue matches true.
func BeTrue() matcher.Matcher[bool] {
	return matcher.New(
		func(v bool) bool { return v },
		"false should be true",
		"true should be false",
	)
}

// BeFalse matches false.
func BeFalse() matcher.Matcher[bool] {
	return matcher.New(
		func(v bool) bool { return !v },
		"true should be false",
		"false should be true",
	)
}

// BeUpperCaseRune matches upper-case letters.
func BeUpperCaseRune() matcher.Matcher[rune] {
	return matcher.Func[rune](func(value rune) matcher.Verdict {
		return matcher.Formatted(
			unicode.IsUpper(value),
			"%q should be uppercase",
			"%q should not be uppercase",
			value,
		)
	})
}

// BeLowerCaseRune matches lower-case letters.
func BeLowerCaseRune() matcher.Matcher[rune] {
	return matcher.Func[rune](func(value rune) matcher.Verdict {
		return matcher.Formatted(
			unicode.IsLower(value),
			"%q should be lowercase",
			"%q should not be lowercase",
			value,
		)
	})
}

// EqualRuneIgnoringCase matches runes equal to other under simple
// Unicode case folding.
func EqualRuneIgnoringCase(other rune) matcher.Matcher[rune] {
	return matcher.Func[rune](func(value rune) matcher.Verdict {
		return matcher.Formatted(
			foldEqual(value, other),
			"%q should equal %q ignoring case",
			"%q should not equal %q ignoring case",
			value, other,
		)
	})
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
