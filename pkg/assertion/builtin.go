package assertion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"digital.vasic.clearcheck/pkg/matcher"
	"digital.vasic.clearcheck/pkg/strmatch"
)

// builtinFactories returns the string matcher catalogue every
// DefaultEngine starts with.
func builtinFactories() map[string]Factory {
	return map[string]Factory{
		"begin_with":                stringFactory(strmatch.BeginWith),
		"end_with":                  stringFactory(strmatch.EndWith),
		"contain":                   stringFactory(strmatch.Contain),
		"contain_ignoring_case":     stringFactory(strmatch.ContainIgnoringCase),
		"equal":                     stringFactory(strmatch.Equal),
		"equal_ignoring_case":       stringFactory(strmatch.EqualIgnoringCase),
		"contain_character":         buildContainCharacter,
		"contain_all_characters":    runesFactory(strmatch.ContainAllCharacters),
		"contain_any_of_characters": runesFactory(strmatch.ContainAnyOfCharacters),
		"contain_only_digits":       noArgFactory(strmatch.ContainOnlyDigits),
		"contain_a_digit":           noArgFactory(strmatch.ContainADigit),
		"not_contain_digits":        noArgFactory(strmatch.NotContainDigits),
		"be_empty":                  noArgFactory(strmatch.BeEmpty),
		"be_lower_case":             noArgFactory(strmatch.BeLowerCase),
		"be_upper_case":             noArgFactory(strmatch.BeUpperCase),
		"be_numeric":                noArgFactory(strmatch.BeNumeric),
		"have_length":               intFactory(strmatch.HaveLength),
		"have_at_least_length":      intFactory(strmatch.HaveAtLeastLength),
		"have_at_most_length":       intFactory(strmatch.HaveAtMostLength),
		"have_length_in_range":      buildLengthInRange,
		"match":                     buildMatch,
	}
}

func noArgFactory(
	build func() matcher.Matcher[string],
) Factory {
	return func(_ Definition) (matcher.Matcher[string], error) {
		return build(), nil
	}
}

func stringFactory(
	build func(string) matcher.Matcher[string],
) Factory {
	return func(d Definition) (matcher.Matcher[string], error) {
		s, ok := toString(d.Value)
		if !ok {
			return nil, invalid(d, "expected a string")
		}
		return build(s), nil
	}
}

func runesFactory(
	build func([]rune) matcher.Matcher[string],
) Factory {
	return func(d Definition) (matcher.Matcher[string], error) {
		s, ok := toString(d.Value)
		if !ok || s == "" {
			return nil, invalid(d, "expected a non-empty string of characters")
		}
		return build([]rune(s)), nil
	}
}

func intFactory(
	build func(int) matcher.Matcher[string],
) Factory {
	return func(d Definition) (matcher.Matcher[string], error) {
		n, ok := toInt(d.Value)
		if !ok || n < 0 {
			return nil, invalid(d, "expected a non-negative integer")
		}
		return build(n), nil
	}
}

// buildContainCharacter expects a value of exactly one character.
func buildContainCharacter(d Definition) (matcher.Matcher[string], error) {
	s, ok := toString(d.Value)
	runes := []rune(s)
	if !ok || len(runes) != 1 {
		return nil, invalid(d, "expected a single character")
	}
	return strmatch.ContainCharacter(runes[0]), nil
}

// buildLengthInRange accepts either Values [lo, hi] or a compact
// Value "lo..hi".
func buildLengthInRange(d Definition) (matcher.Matcher[string], error) {
	var lo, hi int
	var okLo, okHi bool

	switch {
	case len(d.Values) == 2:
		lo, okLo = toInt(d.Values[0])
		hi, okHi = toInt(d.Values[1])
	default:
		s, ok := toString(d.Value)
		if !ok {
			break
		}
		bounds := strings.SplitN(s, "..", 2)
		if len(bounds) != 2 {
			break
		}
		lo, okLo = toInt(bounds[0])
		hi, okHi = toInt(bounds[1])
	}

	if !okLo || !okHi || lo < 0 || lo > hi {
		return nil, invalid(d, "expected a range lo..hi with 0 <= lo <= hi")
	}
	return strmatch.HaveLengthInRange(lo, hi), nil
}

func buildMatch(d Definition) (matcher.Matcher[string], error) {
	s, ok := toString(d.Value)
	if !ok {
		return nil, invalid(d, "expected a regular expression")
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, d.Type, err)
	}
	return strmatch.Match(re), nil
}

func invalid(d Definition, reason string) error {
	return fmt.Errorf(
		"%w: %s: %s, got %v", ErrInvalidValue, d.Type, reason, d.Value,
	)
}

// --- helpers ---

// toString accepts strings only; numbers are not stringified so a
// mistyped definition is reported instead of silently matching.
func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// toInt converts an any value to int. Strings are parsed so that
// compact definitions ("have_length:4") work.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}
