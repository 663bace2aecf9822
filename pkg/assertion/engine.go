package assertion

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"digital.vasic.clearcheck/pkg/logging"
	"digital.vasic.clearcheck/pkg/matcher"
	"digital.vasic.clearcheck/pkg/metrics"
)

// Engine defines the interface for rule engines that build and
// evaluate string matchers from Definitions.
type Engine interface {
	// Build creates the matcher named by d, without applying
	// d.Negate.
	Build(d Definition) (matcher.Matcher[string], error)

	// Evaluate checks a single definition against value.
	Evaluate(d Definition, value string) Result

	// EvaluateAll checks multiple definitions against a map of
	// named values. Each definition's Target field is used as
	// the key into the values map.
	EvaluateAll(defs []Definition, values map[string]string) []Result

	// EvaluateComposite combines defs with kind and checks the
	// composite against value.
	EvaluateComposite(
		kind matcher.Kind,
		defs []Definition,
		value string,
	) Result

	// EvaluateRule is EvaluateComposite attributed to a named rule
	// and the target the value was read from.
	EvaluateRule(
		rule, target string,
		kind matcher.Kind,
		defs []Definition,
		value string,
	) Result

	// Register adds a factory for the given assertion type.
	// Returns an error if the type is already registered.
	Register(assertionType string, factory Factory) error

	// HasFactory reports whether assertionType is registered.
	HasFactory(assertionType string) bool
}

// EngineOption configures a DefaultEngine.
type EngineOption func(*DefaultEngine)

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(l logging.Logger) EngineOption {
	return func(e *DefaultEngine) {
		e.logger = l
	}
}

// WithMetrics sets the recorder that receives every verdict.
func WithMetrics(r metrics.Recorder) EngineOption {
	return func(e *DefaultEngine) {
		e.metrics = r
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    logging.Logger
	metrics   metrics.Recorder
}

// NewEngine creates a DefaultEngine with the built-in string
// matcher catalogue pre-registered.
func NewEngine(opts ...EngineOption) *DefaultEngine {
	e := &DefaultEngine{
		factories: builtinFactories(),
		logger:    logging.NullLogger{},
		metrics:   metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds a factory for the given assertion type.
func (e *DefaultEngine) Register(
	assertionType string,
	factory Factory,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[assertionType]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, assertionType)
	}

	e.factories[assertionType] = factory
	return nil
}

// HasFactory returns true if the given assertion type has a
// registered factory.
func (e *DefaultEngine) HasFactory(assertionType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.factories[assertionType]
	return exists
}

// Types returns the registered assertion types in sorted order.
func (e *DefaultEngine) Types() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.factories))
}

// Build creates the matcher named by d. The lock is released
// before the factory runs so factories may call back into the
// engine.
func (e *DefaultEngine) Build(d Definition) (matcher.Matcher[string], error) {
	e.mu.RLock()
	factory, exists := e.factories[d.Type]
	e.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, d.Type)
	}
	return factory(d)
}

// Evaluate runs a single definition against value. Build
// failures produce a failed Result rather than an error.
func (e *DefaultEngine) Evaluate(d Definition, value string) Result {
	m, err := e.Build(d)
	if err != nil {
		e.logger.Warn("assertion could not be built",
			logging.StringField("type", d.Type),
			logging.StringField("target", d.Target),
			logging.ErrorField(err),
		)
		return e.record(d.Type, "leaf", Result{
			Type:     d.Type,
			Target:   d.Target,
			Expected: d.Value,
			Actual:   value,
			Negated:  d.Negate,
			Message:  err.Error(),
		})
	}

	verdict := behaviorOf(d, withMessage(m, d)).Test(value)
	return e.record(d.Type, "leaf", Result{
		Type:           d.Type,
		Target:         d.Target,
		Expected:       d.Value,
		Actual:         value,
		Negated:        d.Negate,
		Passed:         verdict.Passed,
		Message:        verdict.FailureMessage,
		NegatedMessage: verdict.NegatedFailureMessage,
	})
}

// EvaluateAll runs multiple definitions against a map of named
// values. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	defs []Definition,
	values map[string]string,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, d := range defs {
		value, exists := values[d.Target]
		if !exists {
			results = append(results, e.record(d.Type, "leaf", Result{
				Type:    d.Type,
				Target:  d.Target,
				Negated: d.Negate,
				Message: fmt.Sprintf("target not found: %s", d.Target),
			}))
			continue
		}

		results = append(results, e.Evaluate(d, value))
	}

	return results
}

// EvaluateComposite builds a composite of kind from defs and
// checks it against value.
func (e *DefaultEngine) EvaluateComposite(
	kind matcher.Kind,
	defs []Definition,
	value string,
) Result {
	return e.EvaluateRule("", "", kind, defs, value)
}

// EvaluateRule is EvaluateComposite for a named rule: the Result
// type is rule (when set) and its target is target.
func (e *DefaultEngine) EvaluateRule(
	rule, target string,
	kind matcher.Kind,
	defs []Definition,
	value string,
) Result {
	typ := compositeType(kind)
	if rule != "" {
		typ = rule
	}

	c, err := BuildComposite(e, kind, defs)
	if err != nil {
		e.logger.Warn("composite could not be built",
			logging.StringField("kind", kind.String()),
			logging.StringField("rule", rule),
			logging.ErrorField(err),
		)
		return e.record(typ, kind.String(), Result{
			Type:    typ,
			Target:  target,
			Actual:  value,
			Message: err.Error(),
		})
	}

	verdict := c.Test(value)
	return e.record(typ, kind.String(), Result{
		Type:           typ,
		Target:         target,
		Expected:       len(defs),
		Actual:         value,
		Passed:         verdict.Passed,
		Message:        verdict.FailureMessage,
		NegatedMessage: verdict.NegatedFailureMessage,
	})
}

// record reports r to the logger and metrics and returns it.
func (e *DefaultEngine) record(source, kind string, r Result) Result {
	e.metrics.RecordVerdict(source, kind, r.Passed)

	v := logging.VerdictLog{
		Type:    r.Type,
		Target:  r.Target,
		Negated: r.Negated,
		Passed:  r.Passed,
		Actual:  r.Actual,
	}
	if !r.Passed {
		v.Message = r.Message
	}
	e.logger.LogVerdict(v)
	e.logger.Debug("assertion evaluated",
		logging.StringField("type", r.Type),
		logging.BoolField("passed", r.Passed),
	)
	return r
}

func behaviorOf(d Definition, m matcher.Matcher[string]) matcher.Behavior[string] {
	if d.Negate {
		return matcher.Inverted(m)
	}
	return matcher.Positive(m)
}
