// Package matcher provides the predicate combinator engine that
// every clearcheck assertion is built on. A Matcher tests a single
// value and returns a Verdict; matchers can be inverted, composed
// with AND/OR semantics through a Builder, and nested arbitrarily.
package matcher

import "fmt"

// Verdict is the outcome of testing a value against a Matcher.
// Both messages are always populated: FailureMessage explains why
// the positive form ("should X") failed, NegatedFailureMessage
// explains why the negated form ("should not X") failed.
type Verdict struct {
	// Passed reports whether the value satisfied the matcher.
	Passed bool `json:"passed"`

	// FailureMessage is surfaced when a positive assertion
	// fails.
	FailureMessage string `json:"failure_message"`

	// NegatedFailureMessage is surfaced when a negated
	// assertion fails.
	NegatedFailureMessage string `json:"negated_failure_message"`
}

// NewVerdict creates a Verdict from precomposed messages.
func NewVerdict(passed bool, failure, negated string) Verdict {
	return Verdict{
		Passed:                passed,
		FailureMessage:        failure,
		NegatedFailureMessage: negated,
	}
}

// Formatted creates a Verdict whose two messages are rendered from
// their format strings with the same arguments.
func Formatted(
	passed bool,
	format, negatedFormat string,
	args ...any,
) Verdict {
	return Verdict{
		Passed:                passed,
		FailureMessage:        fmt.Sprintf(format, args...),
		NegatedFailureMessage: fmt.Sprintf(negatedFormat, args...),
	}
}

// Invert returns the logical negation of v. The message pair is
// swapped, so the negated failure explanation becomes the failure
// explanation and vice versa.
func (v Verdict) Invert() Verdict {
	return Verdict{
		Passed:                !v.Passed,
		FailureMessage:        v.NegatedFailureMessage,
		NegatedFailureMessage: v.FailureMessage,
	}
}
