package collection

import "digital.vasic.clearcheck/pkg/matcher"

// ContainDuplicates matches slices in which some element occurs
// more than once.
func ContainDuplicates[E comparable]() matcher.Matcher[[]E] {
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		return matcher.Formatted(
			hasDuplicates(value),
			"%v should have duplicates",
			"%v should not have duplicates",
			value,
		)
	})
}

func hasDuplicates[E comparable](value []E) bool {
	seen := make(map[E]struct{}, len(value))
	for _, e := range value {
		if _, ok := seen[e]; ok {
			return true
		}
		seen[e] = struct{}{}
	}
	return false
}
