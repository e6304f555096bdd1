// Package constraint implements the insertion-ordered constraint set the
// generator emits into and the solver consumes from (spec.md §4.5).
package constraint

import "github.com/ucle-lang/ucle/types"

// Kind distinguishes the two constraint shapes spec.md §4.5 reserves.
type Kind int

const (
	// Equal demands its two types unify exactly. This is the only kind the
	// generator in package infer ever emits.
	Equal Kind = iota
	// Subtype is reserved for the solver interface but, per spec.md §4.5,
	// is never produced by this core's generator.
	Subtype
)

// Constraint is one entry in a Set.
type Constraint struct {
	Kind Kind
	Lhs  types.Type
	Rhs  types.Type
}

// Set is an insertion-ordered, unterminated sequence of constraints. No
// deduplication is performed; spec.md §4.5 notes none is required for
// correctness.
type Set struct {
	items []Constraint
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// Equal appends an Equal(lhs, rhs) constraint and returns s for chaining.
func (s *Set) Equal(lhs, rhs types.Type) *Set {
	s.items = append(s.items, Constraint{Kind: Equal, Lhs: lhs, Rhs: rhs})
	return s
}

// Subtype appends a Subtype(sub, sup) constraint and returns s for chaining.
func (s *Set) Subtype(sub, sup types.Type) *Set {
	s.items = append(s.items, Constraint{Kind: Subtype, Lhs: sub, Rhs: sup})
	return s
}

// Append adds every constraint of other to s, in order.
func (s *Set) Append(other *Set) *Set {
	if other == nil {
		return s
	}
	s.items = append(s.items, other.items...)
	return s
}

// Items returns the constraints in insertion order. The slice is owned by
// s and must not be mutated by the caller.
func (s *Set) Items() []Constraint {
	return s.items
}

// Len reports the number of constraints currently in s.
func (s *Set) Len() int {
	return len(s.items)
}
