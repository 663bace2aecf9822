package matcher

// errBuilderConsumed is the panic message for a Builder used after
// CombineAsAnd or CombineAsOr handed its behaviors to a Composite.
const errBuilderConsumed = "matcher: builder already combined"

// Builder accumulates an ordered sequence of behaviors against a
// single value type. Insertion order is preserved and determines
// the order of messages in the aggregated report.
//
// A Builder is consumed by CombineAsAnd or CombineAsOr; any further
// call on it panics.
type Builder[T any] struct {
	behaviors []Behavior[T]
	consumed  bool
}

// StartBuilding creates a Builder seeded with m.
func StartBuilding[T any](m Matcher[T]) *Builder[T] {
	return &Builder[T]{behaviors: []Behavior[T]{Positive(m)}}
}

// StartBuildingWithNegated creates a Builder seeded with the
// inversion of m.
func StartBuildingWithNegated[T any](m Matcher[T]) *Builder[T] {
	return &Builder[T]{behaviors: []Behavior[T]{Inverted(m)}}
}

// Push appends m and returns the Builder for chaining.
func (b *Builder[T]) Push(m Matcher[T]) *Builder[T] {
	return b.push(Positive(m))
}

// PushInverted appends the inversion of m and returns the Builder
// for chaining.
func (b *Builder[T]) PushInverted(m Matcher[T]) *Builder[T] {
	return b.push(Inverted(m))
}

// Len returns the number of behaviors accumulated so far.
func (b *Builder[T]) Len() int {
	b.mustBeLive()
	return len(b.behaviors)
}

// CombineAsAnd consumes the Builder and returns a Composite that
// passes only when every behavior passes.
func (b *Builder[T]) CombineAsAnd() *Composite[T] {
	return b.combine(KindAnd)
}

// CombineAsOr consumes the Builder and returns a Composite that
// passes when at least one behavior passes.
func (b *Builder[T]) CombineAsOr() *Composite[T] {
	return b.combine(KindOr)
}

func (b *Builder[T]) push(behavior Behavior[T]) *Builder[T] {
	b.mustBeLive()
	b.behaviors = append(b.behaviors, behavior)
	return b
}

func (b *Builder[T]) combine(kind Kind) *Composite[T] {
	b.mustBeLive()
	c := &Composite[T]{behaviors: b.behaviors, kind: kind}
	b.behaviors = nil
	b.consumed = true
	return c
}

func (b *Builder[T]) mustBeLive() {
	if b.consumed {
		panic(errBuilderConsumed)
	}
}
