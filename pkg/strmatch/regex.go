package strmatch

import (
	"regexp"
	"strconv"

	"digital.vasic.clearcheck/pkg/matcher"
)

// Match matches strings accepted by the compiled expression re.
func Match(re *regexp.Regexp) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			re.MatchString(value),
			"%q should match the regular expression %q",
			"%q should not match the regular expression %q",
			value, re.String(),
		)
	})
}

// BeNumeric matches strings that parse as a floating point
// number.
func BeNumeric() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		_, err := strconv.ParseFloat(value, 64)
		return matcher.Formatted(
			err == nil,
			"%q should be numeric",
			"%q should not be numeric",
			value,
		)
	})
}
