// Package strmatch provides leaf matchers over strings. Lengths are
// measured in runes, not bytes.
package strmatch

import (
	"strings"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeginWith matches strings that start with prefix.
func BeginWith(prefix string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.HasPrefix(value, prefix),
			"%q should begin with %q",
			"%q should not begin with %q",
			value, prefix,
		)
	})
}

// EndWith matches strings that end with suffix.
func EndWith(suffix string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.HasSuffix(value, suffix),
			"%q should end with %q",
			"%q should not end with %q",
			value, suffix,
		)
	})
}
