package assertion

import "digital.vasic.clearcheck/pkg/matcher"

// Factory builds a string matcher from a Definition. It returns
// an error wrapping ErrInvalidValue when the definition's
// parameters are unusable.
type Factory func(d Definition) (matcher.Matcher[string], error)
