// Package types implements the closed type algebra of the UCLE inference
// core: type variables, named/built-in types, n-ary functions, row-
// polymorphic records, surface unions/intersections and literal
// refinements, plus the substitution and generalization machinery that
// operates over them.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every variant of the type algebra.
// FreeVars returns a sorted, deduplicated slice of the identifiers of every
// Var node reachable from the receiver (including, for an open Record, its
// row variable). Apply substitutes every free variable bound in s, chasing
// transitive bindings, and returns the resulting type; it never mutates the
// receiver.
type Type interface {
	fmt.Stringer
	FreeVars() []int
	Apply(s *Substitution) Type
}

// Occurs reports whether id appears anywhere inside t.
func Occurs(id int, t Type) bool {
	return Contains(t.FreeVars(), id)
}

// Var is a unification variable, identified by an integer allocated from a
// FreshSupply and unique within that supply's inference run.
type Var struct {
	ID int
}

func NewVar(id int) *Var { return &Var{ID: id} }

func (v *Var) FreeVars() []int { return []int{v.ID} }

func (v *Var) Apply(s *Substitution) Type {
	if u, ok := s.lookup(v.ID); ok {
		return u.Apply(s)
	}
	return v
}

func (v *Var) String() string { return fmt.Sprintf("T%d", v.ID) }

// Named is a nominal or built-in type, optionally parameterised.
type Named struct {
	Name string
	Args []Type
}

func (n *Named) FreeVars() []int {
	var out []int
	for _, a := range n.Args {
		out = UnionVars(out, a.FreeVars())
	}
	return out
}

func (n *Named) Apply(s *Substitution) Type {
	if len(n.Args) == 0 {
		return n
	}
	args := make([]Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Apply(s)
	}
	return &Named{Name: n.Name, Args: args}
}

func (n *Named) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "<" + strings.Join(parts, ", ") + ">"
}

// Built-in base types. These are the only Named values the core produces
// itself; user type declarations introduce further Named names (see
// spec.md §4.6, type declaration).
var (
	Number  = &Named{Name: "Number"}
	String  = &Named{Name: "String"}
	Boolean = &Named{Name: "Boolean"}
	Any     = &Named{Name: "Any"}
	Nothing = &Named{Name: "Nothing"}
)

// Function is an n-ary function type; arity is part of its identity.
type Function struct {
	Params []Type
	Return Type
}

func (f *Function) FreeVars() []int {
	out := f.Return.FreeVars()
	for _, p := range f.Params {
		out = UnionVars(out, p.FreeVars())
	}
	return out
}

func (f *Function) Apply(s *Substitution) Type {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Apply(s)
	}
	return &Function{Params: params, Return: f.Return.Apply(s)}
}

// String renders the function per spec.md §4.1: a single non-function
// parameter is not parenthesized ("a -> c"), a single function-typed
// parameter is ("(a -> b) -> c"), and a multi-parameter list is always
// rendered as a parenthesized tuple regardless of whether its members are
// themselves function types -- this asymmetry is deliberate, see
// spec.md §9.
func (f *Function) String() string {
	var params string
	if len(f.Params) == 1 {
		p := f.Params[0]
		if _, isFunc := p.(*Function); isFunc {
			params = "(" + p.String() + ")"
		} else {
			params = p.String()
		}
	} else {
		parts := make([]string, len(f.Params))
		for i, p := range f.Params {
			parts[i] = p.String()
		}
		params = "(" + strings.Join(parts, ", ") + ")"
	}
	return params + " -> " + f.Return.String()
}

// Record is a structural record type. A non-nil Row makes the record open:
// it unifies with any record carrying at least Fields, plus whatever the
// row variable is later bound to. Order preserves field insertion order for
// pretty-printing; Fields is keyed by field name.
type Record struct {
	Fields map[string]Type
	Order  []string
	Row    *Var
}

// NewRecord builds a closed record from fields in insertion order.
func NewRecord(order []string, fields map[string]Type) *Record {
	return &Record{Fields: fields, Order: order}
}

// NewOpenRecord builds an open record with the given row variable.
func NewOpenRecord(order []string, fields map[string]Type, row *Var) *Record {
	return &Record{Fields: fields, Order: order, Row: row}
}

func (r *Record) FreeVars() []int {
	var out []int
	for _, k := range r.Order {
		out = UnionVars(out, r.Fields[k].FreeVars())
	}
	if r.Row != nil {
		out = UnionVars(out, r.Row.FreeVars())
	}
	return out
}

// Apply substitutes every field and, if the row variable resolves to
// another record (open or closed), flattens that record's fields into the
// result -- this is what lets a solved row-extension (see unify.Unify,
// rule 5) surface as a single merged record instead of a chain.
func (r *Record) Apply(s *Substitution) Type {
	fields := make(map[string]Type, len(r.Fields))
	order := append([]string{}, r.Order...)
	for _, k := range order {
		fields[k] = r.Fields[k].Apply(s)
	}
	merged := &Record{Fields: fields, Order: order}
	if r.Row == nil {
		return merged
	}
	switch resolved := r.Row.Apply(s).(type) {
	case *Record:
		for _, k := range resolved.Order {
			if _, exists := merged.Fields[k]; !exists {
				merged.Fields[k] = resolved.Fields[k]
				merged.Order = append(merged.Order, k)
			}
		}
		merged.Row = resolved.Row
	case *Var:
		merged.Row = resolved
	}
	return merged
}

func (r *Record) String() string {
	parts := make([]string, 0, len(r.Order))
	for _, k := range r.Order {
		parts = append(parts, k+": "+r.Fields[k].String())
	}
	body := strings.Join(parts, ", ")
	switch {
	case r.Row == nil && body == "":
		return "rect {  }"
	case r.Row == nil:
		return "rect { " + body + " }"
	case body == "":
		return "rect { | " + r.Row.String() + " }"
	default:
		return "rect { " + body + " | " + r.Row.String() + " }"
	}
}

// Union is a surface-level union annotation, treated positionally by the
// unifier (spec.md §9: "known weakness", not a subtyping search).
type Union struct {
	Components []Type
}

func (u *Union) FreeVars() []int {
	var out []int
	for _, c := range u.Components {
		out = UnionVars(out, c.FreeVars())
	}
	return out
}

func (u *Union) Apply(s *Substitution) Type {
	out := make([]Type, len(u.Components))
	for i, c := range u.Components {
		out[i] = c.Apply(s)
	}
	return &Union{Components: out}
}

func (u *Union) String() string {
	parts := make([]string, len(u.Components))
	for i, c := range u.Components {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

// Intersection is the Union counterpart for `&` annotations.
type Intersection struct {
	Components []Type
}

func (i *Intersection) FreeVars() []int {
	var out []int
	for _, c := range i.Components {
		out = UnionVars(out, c.FreeVars())
	}
	return out
}

func (i *Intersection) Apply(s *Substitution) Type {
	out := make([]Type, len(i.Components))
	for j, c := range i.Components {
		out[j] = c.Apply(s)
	}
	return &Intersection{Components: out}
}

func (i *Intersection) String() string {
	parts := make([]string, len(i.Components))
	for j, c := range i.Components {
		parts[j] = c.String()
	}
	return strings.Join(parts, " & ")
}

// Literal is a singleton refinement of a base Named type, e.g. 42 : Number.
type Literal struct {
	Value any
	Base  *Named
}

func (l *Literal) FreeVars() []int { return nil }

// Apply is a no-op: literal types are fixed, per spec.md §4.1.
func (l *Literal) Apply(*Substitution) Type { return l }

func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Named)(nil)
	_ Type = (*Function)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Intersection)(nil)
	_ Type = (*Literal)(nil)
)
