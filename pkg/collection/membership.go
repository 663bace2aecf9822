// Package collection provides leaf matchers over slices. Sizes
// count elements.
package collection

import (
	"slices"

	"digital.vasic.clearcheck/pkg/matcher"
)

// Contain matches slices holding element.
func Contain[E comparable](element E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			slices.Contains(value, element),
			"%v should contain %v",
			"%v should not contain %v",
			value, element,
		)
	})
}

// ContainAll matches slices holding every element of elements.
func ContainAll[E comparable](elements []E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		missing := missingFrom(value, elements)
		return matcher.Formatted(
			len(missing) == 0,
			"%v should contain all of %v but was missing %v",
			"%v should not contain all of %v, missing %v",
			value, elements, missing,
		)
	})
}

// ContainAny matches slices holding at least one element of
// elements.
func ContainAny[E comparable](elements []E) matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		found := slices.ContainsFunc(elements, func(e E) bool {
			return slices.Contains(value, e)
		})
		return matcher.Formatted(
			found,
			"%v should contain any of %v",
			"%v should not contain any of %v",
			value, elements,
		)
	})
}

// BeEmpty matches slices without elements.
func BeEmpty[E any]() matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			len(value) == 0,
			"%v should be empty",
			"%v should not be empty",
			value,
		)
	})
}

func missingFrom[E comparable](value, wanted []E) []E {
	var missing []E
	for _, w := range wanted {
		if !slices.Contains(value, w) {
			missing = append(missing, w)
		}
	}
	return missing
}
