package strmatch

import (
	"strings"
	"unicode"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeLowerCase matches strings that contain no upper-case letters.
func BeLowerCase() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.IndexFunc(value, unicode.IsUpper) == -1,
			"%q should be lowercase",
			"%q should not be lowercase",
			value,
		)
	})
}

// BeUpperCase matches strings that contain no lower-case letters.
func BeUpperCase() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.IndexFunc(value, unicode.IsLower) == -1,
			"%q should be uppercase",
			"%q should not be uppercase",
			value,
		)
	})
}
