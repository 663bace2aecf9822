// Package assertion turns matcher verdicts into assertions. It
// provides the panicking wrappers used directly in tests and a
// named rule engine that builds string matchers from declarative
// definitions such as "begin_with:go".
package assertion

// Definition describes a single string matcher to build and
// evaluate.
type Definition struct {
	// Type is the registered factory name (e.g., "contain",
	// "have_at_least_length").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check when evaluating
	// against a map of named values.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Value is the parameter for single-value factories.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds parameters for multi-value factories
	// (e.g., "have_length_in_range").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Negate inverts the matcher.
	Negate bool `json:"negate,omitempty" yaml:"negate,omitempty"`

	// Message, when set, replaces the generated failure
	// message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result captures the outcome of evaluating a Definition.
type Result struct {
	// Type is the factory name that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target,omitempty"`

	// Expected is the definition's parameter.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was tested.
	Actual string `json:"actual"`

	// Negated reports whether the matcher was inverted.
	Negated bool `json:"negated,omitempty"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message explains why the assertion failed, or would
	// fail had it been expected to hold.
	Message string `json:"message"`

	// NegatedMessage explains why the opposite assertion
	// would fail.
	NegatedMessage string `json:"negated_message,omitempty"`
}
