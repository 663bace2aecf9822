package bank

import "digital.vasic.clearcheck/pkg/assertion"

// RuleFile represents the on-disk structure of a rule bank file
// (JSON or YAML).
type RuleFile struct {
	Version  string         `json:"version" yaml:"version"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Rules    []Rule         `json:"rules" yaml:"rules"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Rule is a named composite of string assertions.
type Rule struct {
	// ID names the rule. Once registered with an engine it is
	// also the assertion type other rules use to reference it.
	ID string `json:"id" yaml:"id"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Target names the value the rule checks in CheckAll, for
	// example an environment variable.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Combine is "and" (default) or "or".
	Combine string `json:"combine,omitempty" yaml:"combine,omitempty"`

	// Assertions are compact definitions such as
	// "!begin_with:pass".
	Assertions []string `json:"assertions,omitempty" yaml:"assertions,omitempty"`

	// Definitions are full definitions, appended after
	// Assertions.
	Definitions []assertion.Definition `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Defs returns the rule's compact assertions followed by its full
// definitions, in order.
func (r *Rule) Defs() []assertion.Definition {
	defs := assertion.ParseDefinitions(r.Assertions)
	return append(defs, r.Definitions...)
}
