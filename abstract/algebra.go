// Package abstract defines the algebraic contracts the concrete tree
// packages are generic over, together with the range-bound types their
// query operations accept.
package abstract

// Combiner is a monoid over S: an identity element and an associative
// binary operation for which the identity is a two-sided unit.
//
// Implementations must satisfy, for all a, b, c:
//
//	Combine(Identity(), a) == a
//	Combine(a, Identity()) == a
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// The trees never verify these laws at runtime; a combiner that breaks
// them is a caller bug, not a recoverable condition.
type Combiner[S any] interface {
	// Identity returns the neutral element.
	Identity() S

	// Combine applies the binary operation. It must be pure.
	Combine(a, b S) S
}

// Action is a monoid over F that additionally acts on S. It represents a
// deferred transformation of a whole segment: composing two actions and
// then acting must equal acting with g first and f second.
//
// Implementations must satisfy, for all f, g, s:
//
//	Act(Identity(), s) == s
//	Act(Compose(f, g), s) == Act(f, Act(g, s))
//
// The ordering in the second law is what makes push-down compose pending
// actions correctly: the newer action always goes in front.
type Action[S, F any] interface {
	// Identity returns the action that leaves every S unchanged.
	Identity() F

	// Compose combines two actions; the result acts like g followed by f.
	Compose(f, g F) F

	// Act applies the action to an element or segment aggregate of S.
	Act(f F, s S) S
}

// Inverter is a Combiner whose every element has an inverse, i.e. a group
// over S: Combine(s, Invert(s)) == Identity() for all s. Structures that
// can subtract, like the Fenwick tree's range fold, require it.
type Inverter[S any] interface {
	Combiner[S]

	// Invert returns the inverse of s.
	Invert(s S) S
}

type combinerFunc[S any] struct {
	identity S
	combine  func(a, b S) S
}

func (c combinerFunc[S]) Identity() S      { return c.identity }
func (c combinerFunc[S]) Combine(a, b S) S { return c.combine(a, b) }

// CombinerFunc adapts a raw identity value and combine closure into a
// Combiner, for callers that don't want to declare a named type.
func CombinerFunc[S any](identity S, combine func(a, b S) S) Combiner[S] {
	return combinerFunc[S]{identity: identity, combine: combine}
}

type actionFunc[S, F any] struct {
	identity F
	compose  func(f, g F) F
	act      func(f F, s S) S
}

func (a actionFunc[S, F]) Identity() F      { return a.identity }
func (a actionFunc[S, F]) Compose(f, g F) F { return a.compose(f, g) }
func (a actionFunc[S, F]) Act(f F, s S) S   { return a.act(f, s) }

// ActionFunc adapts raw closures into an Action.
func ActionFunc[S, F any](identity F, compose func(f, g F) F, act func(f F, s S) S) Action[S, F] {
	return actionFunc[S, F]{identity: identity, compose: compose, act: act}
}
