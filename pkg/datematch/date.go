// Package datematch provides leaf matchers over time.Time values.
// Calendar comparisons use each value's own location.
package datematch

import (
	"time"

	"digital.vasic.clearcheck/pkg/matcher"
)

// dateLayout renders dates in messages.
const dateLayout = "2006-01-02"

// HaveSameYear matches times in the same calendar year as other.
func HaveSameYear(other time.Time) matcher.Matcher[time.Time] {
	return calendar(other,
		func(a, b time.Time) bool { return a.Year() == b.Year() },
		"%s should have the same year as %s",
		"%s should not have the same year as %s",
	)
}

// HaveSameMonth matches times in the same calendar month as other,
// regardless of year.
func HaveSameMonth(other time.Time) matcher.Matcher[time.Time] {
	return calendar(other,
		func(a, b time.Time) bool { return a.Month() == b.Month() },
		"%s should have the same month as %s",
		"%s should not have the same month as %s",
	)
}

// HaveSameDay matches times on the same day of month as other,
// regardless of year and month.
func HaveSameDay(other time.Time) matcher.Matcher[time.Time] {
	return calendar(other,
		func(a, b time.Time) bool { return a.Day() == b.Day() },
		"%s should have the same day as %s",
		"%s should not have the same day as %s",
	)
}

// BeBefore matches times strictly before other.
func BeBefore(other time.Time) matcher.Matcher[time.Time] {
	return compareTimes(other, time.RFC3339Nano,
		func(a, b time.Time) bool { return a.Before(b) },
		"%s should be before %s",
		"%s should not be before %s",
	)
}

// BeAfter matches times strictly after other.
func BeAfter(other time.Time) matcher.Matcher[time.Time] {
	return compareTimes(other, time.RFC3339Nano,
		func(a, b time.Time) bool { return a.After(b) },
		"%s should be after %s",
		"%s should not be after %s",
	)
}

// BeALeapYear matches times whose year is a Gregorian leap year.
func BeALeapYear() matcher.Matcher[time.Time] {
	return matcher.Func[time.Time](func(value time.Time) matcher.Verdict {
		return matcher.Formatted(
			IsLeapYear(value.Year()),
			"%s should be a leap year",
			"%s should not be a leap year",
			value.Format(dateLayout),
		)
	})
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func calendar(
	other time.Time,
	holds func(a, b time.Time) bool,
	format, negatedFormat string,
) matcher.Matcher[time.Time] {
	return compareTimes(other, dateLayout, holds, format, negatedFormat)
}

func compareTimes(
	other time.Time,
	layout string,
	holds func(a, b time.Time) bool,
	format, negatedFormat string,
) matcher.Matcher[time.Time] {
	return matcher.Func[time.Time](func(value time.Time) matcher.Verdict {
		return matcher.Formatted(
			holds(value, other),
			format, negatedFormat,
			value.Format(layout), other.Format(layout),
		)
	})
}
