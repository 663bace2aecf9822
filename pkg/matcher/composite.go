package matcher

import "strings"

// Kind selects how a Composite combines its behaviors.
type Kind int

const (
	// KindAnd passes when every behavior passes.
	KindAnd Kind = iota
	// KindOr passes when at least one behavior passes.
	KindOr
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return "unknown"
	}
}

// messageSeparator joins aggregated sub-verdict messages.
const messageSeparator = "\n"

// Composite is an immutable AND/OR combination of behaviors. It is
// itself a Matcher and can be nested inside other composites.
type Composite[T any] struct {
	behaviors []Behavior[T]
	kind      Kind
}

// All returns an AND composite over ms.
func All[T any](ms ...Matcher[T]) *Composite[T] {
	return newComposite(KindAnd, ms)
}

// Any returns an OR composite over ms.
func Any[T any](ms ...Matcher[T]) *Composite[T] {
	return newComposite(KindOr, ms)
}

func newComposite[T any](kind Kind, ms []Matcher[T]) *Composite[T] {
	behaviors := make([]Behavior[T], 0, len(ms))
	for _, m := range ms {
		behaviors = append(behaviors, Positive(m))
	}
	return &Composite[T]{behaviors: behaviors, kind: kind}
}

// Kind returns the combination kind.
func (c *Composite[T]) Kind() Kind {
	return c.kind
}

// Len returns the number of combined behaviors.
func (c *Composite[T]) Len() int {
	return len(c.behaviors)
}

// Test evaluates every behavior against value, without
// short-circuiting, and folds the sub-verdicts into one.
//
// For AND, the failure message lists the failure messages of the
// behaviors that failed and the negated failure message lists the
// negated messages of the behaviors that passed. For OR, both
// messages list every behavior's respective message.
func (c *Composite[T]) Test(value T) Verdict {
	verdicts := make([]Verdict, len(c.behaviors))
	for i, b := range c.behaviors {
		verdicts[i] = b.Test(value)
	}

	if c.kind == KindOr {
		return combineOr(verdicts)
	}
	return combineAnd(verdicts)
}

func combineAnd(verdicts []Verdict) Verdict {
	passed := true
	var failures, negated []string
	for _, v := range verdicts {
		if v.Passed {
			negated = append(negated, v.NegatedFailureMessage)
		} else {
			passed = false
			failures = append(failures, v.FailureMessage)
		}
	}
	return NewVerdict(
		passed,
		strings.Join(failures, messageSeparator),
		strings.Join(negated, messageSeparator),
	)
}

func combineOr(verdicts []Verdict) Verdict {
	passed := false
	failures := make([]string, 0, len(verdicts))
	negated := make([]string, 0, len(verdicts))
	for _, v := range verdicts {
		passed = passed || v.Passed
		failures = append(failures, v.FailureMessage)
		negated = append(negated, v.NegatedFailureMessage)
	}
	return NewVerdict(
		passed,
		strings.Join(failures, messageSeparator),
		strings.Join(negated, messageSeparator),
	)
}
