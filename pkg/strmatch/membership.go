package strmatch

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"digital.vasic.clearcheck/pkg/matcher"
)

// fold is shared by the case-insensitive matchers. A Caser keeps
// state and is not safe for concurrent use, so each call builds
// its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Contain matches strings containing substr.
func Contain(substr string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.Contains(value, substr),
			"%q should contain %q",
			"%q should not contain %q",
			value, substr,
		)
	})
}

// ContainIgnoringCase matches strings containing substr under
// Unicode case folding.
func ContainIgnoringCase(substr string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.Contains(fold(value), fold(substr)),
			"%q should contain %q ignoring case",
			"%q should not contain %q ignoring case",
			value, substr,
		)
	})
}

// ContainCharacter matches strings containing ch.
func ContainCharacter(ch rune) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.ContainsRune(value, ch),
			"%q should contain the character %q",
			"%q should not contain the character %q",
			value, ch,
		)
	})
}

// ContainAllCharacters matches strings containing every rune in
// chars.
func ContainAllCharacters(chars []rune) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		var missing []rune
		for _, ch := range chars {
			if !strings.ContainsRune(value, ch) {
				missing = append(missing, ch)
			}
		}
		failure := fmt.Sprintf("%q should contain all the characters %q", value, string(chars))
		if len(missing) > 0 {
			failure += fmt.Sprintf(" but was missing %q", string(missing))
		}
		return matcher.NewVerdict(
			len(missing) == 0,
			failure,
			fmt.Sprintf("%q should not contain all the characters %q", value, string(chars)),
		)
	})
}

// ContainAnyOfCharacters matches strings containing at least one
// rune in chars.
func ContainAnyOfCharacters(chars []rune) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.ContainsAny(value, string(chars)),
			"%q should contain any of the characters %q",
			"%q should not contain any of the characters %q",
			value, string(chars),
		)
	})
}

// ContainOnlyDigits matches strings whose every rune is a decimal
// digit. The empty string matches vacuously.
func ContainOnlyDigits() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		onlyDigits := strings.IndexFunc(value, isNotDigit) == -1
		return matcher.Formatted(
			onlyDigits,
			"%q should only contain digits",
			"%q should not only contain digits",
			value,
		)
	})
}

// ContainADigit matches strings with at least one decimal digit.
func ContainADigit() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.IndexFunc(value, unicode.IsDigit) >= 0,
			"%q should contain a digit",
			"%q should not contain a digit",
			value,
		)
	})
}

// NotContainDigits matches strings without any decimal digit.
func NotContainDigits() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			strings.IndexFunc(value, unicode.IsDigit) == -1,
			"%q should not contain digits",
			"%q should contain digits",
			value,
		)
	})
}

// BeEmpty matches the empty string.
func BeEmpty() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			value == "",
			"%q should be empty",
			"%q should not be empty",
			value,
		)
	})
}

func isNotDigit(r rune) bool {
	return !unicode.IsDigit(r)
}
