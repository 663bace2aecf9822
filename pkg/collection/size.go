package collection

import "digital.vasic.clearcheck/pkg/matcher"

// HaveSize matches slices of exactly size elements.
func HaveSize[E any](size int) matcher.Matcher[[]E] {
	return sizeMatcher[E](
		func(n int) bool { return n == size },
		"%v should have size %d",
		"%v should not have size %d",
		size,
	)
}

// HaveAtLeastSize matches slices of at least size elements.
func HaveAtLeastSize[E any](size int) matcher.Matcher[[]E] {
	return sizeMatcher[E](
		func(n int) bool { return n >= size },
		"%v should have at least size %d",
		"%v should not have at least size %d",
		size,
	)
}

// HaveAtMostSize matches slices of at most size elements.
func HaveAtMostSize[E any](size int) matcher.Matcher[[]E] {
	return sizeMatcher[E](
		func(n int) bool { return n <= size },
		"%v should have at most size %d",
		"%v should not have at most size %d",
		size,
	)
}

func sizeMatcher[E any](
	accept func(n int) bool,
	format, negatedFormat string,
	size int,
) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			accept(len(value)),
			format, negatedFormat,
			value, size,
		)
	})
}
