package assertion

import (
	"fmt"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BuildComposite builds every definition with e and combines them
// in order with kind. Negated definitions are pushed inverted.
func BuildComposite(
	e Engine,
	kind matcher.Kind,
	defs []Definition,
) (*matcher.Composite[string], error) {
	if len(defs) == 0 {
		return nil, ErrEmptyComposite
	}

	var b *matcher.Builder[string]
	for i, d := range defs {
		m, err := e.Build(d)
		if err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
		m = withMessage(m, d)

		switch {
		case b == nil && d.Negate:
			b = matcher.StartBuildingWithNegated(m)
		case b == nil:
			b = matcher.StartBuilding(m)
		case d.Negate:
			b.PushInverted(m)
		default:
			b.Push(m)
		}
	}

	if kind == matcher.KindOr {
		return b.CombineAsOr(), nil
	}
	return b.CombineAsAnd(), nil
}

// AllPassComposite checks that value satisfies every definition.
// The Result's messages are the composite's aggregated messages.
func AllPassComposite(e Engine, defs []Definition, value string) Result {
	return e.EvaluateComposite(matcher.KindAnd, defs, value)
}

// AnyPassComposite checks that value satisfies at least one
// definition.
func AnyPassComposite(e Engine, defs []Definition, value string) Result {
	return e.EvaluateComposite(matcher.KindOr, defs, value)
}

// CompositeFactory returns a Factory that builds a composite of
// kind over a fixed set of sub-definitions. Registering it under
// a name makes the composite usable like any built-in type,
// including inside other composites.
func CompositeFactory(
	e Engine,
	kind matcher.Kind,
	subs []Definition,
) Factory {
	return func(_ Definition) (matcher.Matcher[string], error) {
		return BuildComposite(e, kind, subs)
	}
}

// withMessage makes d.Message the failure message of d as
// written. For a negated definition the override goes into the
// negated slot, which inversion turns into the failure message.
func withMessage(
	m matcher.Matcher[string],
	d Definition,
) matcher.Matcher[string] {
	if d.Message == "" {
		return m
	}
	return matcher.Func[string](func(value string) matcher.Verdict {
		v := m.Test(value)
		if d.Negate {
			v.NegatedFailureMessage = d.Message
		} else {
			v.FailureMessage = d.Message
		}
		return v
	})
}

func compositeType(kind matcher.Kind) string {
	if kind == matcher.KindOr {
		return "any_pass"
	}
	return "all_pass"
}
