package strmatch

import "digital.vasic.clearcheck/pkg/matcher"

// Equal matches strings identical to other.
func Equal(other string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			value == other,
			"%q should equal %q",
			"%q should not equal %q",
			value, other,
		)
	})
}

// EqualIgnoringCase matches strings equal to other under Unicode
// case folding.
func EqualIgnoringCase(other string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			fold(value) == fold(other),
			"%q should equal %q ignoring case",
			"%q should not equal %q ignoring case",
			value, other,
		)
	})
}
