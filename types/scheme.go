package types

// Scheme is a type universally quantified over zero or more variable
// identifiers. A Scheme with an empty Vars list is a monotype.
type Scheme struct {
	Vars []int
	Body Type
}

// Mono wraps t as an unquantified scheme -- used for lambda parameters and
// match-bound pattern variables, which spec.md §4.6 requires to stay
// monomorphic, and for `const` bindings, which spec.md explicitly does not
// generalize.
func Mono(t Type) *Scheme {
	return &Scheme{Body: t}
}

// FreeVars of a scheme are the free variables of its body minus its
// quantified variables (spec.md §3).
func (s *Scheme) FreeVars() []int {
	return Diff(s.Body.FreeVars(), s.Vars)
}

// Instantiate replaces every quantified variable with a fresh one and
// returns the resulting monotype (spec.md §4.4, "lookup ... instantiated at
// fresh identifiers").
func Instantiate(s *Scheme, fresh *FreshSupply) Type {
	if len(s.Vars) == 0 {
		return s.Body
	}
	sub := EmptySubstitution()
	for _, v := range s.Vars {
		sub = sub.Extend(v, fresh.FreshVar())
	}
	return s.Body.Apply(sub)
}

// Generalize quantifies over exactly the variables free in t but not free
// in envFreeVars, per spec.md §4.4.
func Generalize(t Type, envFreeVars []int) *Scheme {
	return &Scheme{
		Vars: Diff(t.FreeVars(), envFreeVars),
		Body: t,
	}
}
