// Package env implements the type environment (spec.md §4.4): a mapping
// from identifier names to type schemes, supporting instantiating lookup,
// functional extension, and the free-variable computation generalization
// needs.
package env

import (
	"github.com/benbjohnson/immutable"

	"github.com/ucle-lang/ucle/types"
)

// Env is a persistent name -> *types.Scheme map. It is backed by
// benbjohnson/immutable so that extending an Env for a sub-derivation
// never aliases or mutates the caller's Env (spec.md §5: "no mutable
// aliasing between the environment passed into a sub-derivation and the
// one passed out").
type Env struct {
	schemes *immutable.Map[string, *types.Scheme]
}

// New returns an empty environment.
func New() *Env {
	return &Env{schemes: immutable.NewMap[string, *types.Scheme](nil)}
}

// Builtins returns an environment seeded with the five built-in base types
// bound as themselves -- exactly the builtin set spec.md §4.8 step 2
// requires the driver to seed. Boolean literals never reach this
// environment: the generator resolves *ast.BoolLit to types.Boolean
// directly, since `True`/`False` are literal tokens in the grammar, not
// identifier references.
func Builtins() *Env {
	e := New()
	for _, t := range []*types.Named{types.Number, types.String, types.Boolean, types.Any, types.Nothing} {
		e = e.Extend(t.Name, types.Mono(t))
	}
	return e
}

// Scheme looks up name without instantiating it.
func (e *Env) Scheme(name string) (*types.Scheme, bool) {
	return e.schemes.Get(name)
}

// Lookup returns name's scheme instantiated at fresh variables (spec.md
// §4.4). The caller is responsible for turning a missing binding into the
// right ilerr kind, since that depends on the lexical case of name
// (spec.md §4.6).
func (e *Env) Lookup(name string, fresh *types.FreshSupply) (types.Type, bool) {
	scheme, ok := e.schemes.Get(name)
	if !ok {
		return nil, false
	}
	return types.Instantiate(scheme, fresh), true
}

// Extend returns a new Env with name bound to scheme, leaving e unchanged.
func (e *Env) Extend(name string, scheme *types.Scheme) *Env {
	return &Env{schemes: e.schemes.Set(name, scheme)}
}

// FreeVars is the union of the free variables of every scheme bound in e
// (spec.md §3).
func (e *Env) FreeVars() []int {
	var out []int
	itr := e.schemes.Iterator()
	for !itr.Done() {
		_, scheme, _ := itr.Next()
		out = types.UnionVars(out, scheme.FreeVars())
	}
	return out
}

// Generalize quantifies t over every variable free in t but not free in e
// (spec.md §4.4).
func (e *Env) Generalize(t types.Type) *types.Scheme {
	return types.Generalize(t, e.FreeVars())
}
