package mapmatch

import (
	"fmt"
	"strings"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeEmpty matches maps without entries.
func BeEmpty[K comparable, V any]() matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		return matcher.Formatted(
			len(value) == 0,
			"%v should be empty",
			"%v should not be empty",
			value,
		)
	})
}

// HaveSize matches maps of exactly size entries.
func HaveSize[K comparable, V any](size int) matcher.Matcher[map[K]V] {
	return sizeMatcher[K, V](
		func(n int) bool { return n == size },
		"%v should have size %d",
		"%v should not have size %d",
		size,
	)
}

// HaveAtLeastSize matches maps of at least size entries.
func HaveAtLeastSize[K comparable, V any](size int) matcher.Matcher[map[K]V] {
	return sizeMatcher[K, V](
		func(n int) bool { return n >= size },
		"%v should have at least size %d",
		"%v should not have at least size %d",
		size,
	)
}

// HaveAtMostSize matches maps of at most size entries.
func HaveAtMostSize[K comparable, V any](size int) matcher.Matcher[map[K]V] {
	return sizeMatcher[K, V](
		func(n int) bool { return n <= size },
		"%v should have at most size %d",
		"%v should not have at most size %d",
		size,
	)
}

func sizeMatcher[K comparable, V any](
	accept func(n int) bool,
	format, negatedFormat string,
	size int,
) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		return matcher.Formatted(
			accept(len(value)),
			format, negatedFormat,
			value, size,
		)
	})
}

func compareFormatted[K any](a, b K) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
