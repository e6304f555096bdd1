package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucle-lang/ucle/env"
	"github.com/ucle-lang/ucle/types"
)

func TestLookupInstantiatesAtFreshIdentifiers(t *testing.T) {
	fresh := types.NewFreshSupply()
	fresh.Fresh() // id 0 is the scheme's own bound variable, drawn from the same supply
	scheme := &types.Scheme{Vars: []int{0}, Body: &types.Function{Params: []types.Type{types.NewVar(0)}, Return: types.NewVar(0)}}
	e := env.New().Extend("id", scheme)

	got, ok := e.Lookup("id", fresh)
	require.True(t, ok)
	fn := got.(*types.Function)
	param := fn.Params[0].(*types.Var)
	ret := fn.Return.(*types.Var)
	assert.Equal(t, param.ID, ret.ID)
	assert.NotEqual(t, 0, param.ID) // the scheme's own bound id must not leak out
}

func TestLookupMissingFails(t *testing.T) {
	_, ok := env.New().Lookup("nope", types.NewFreshSupply())
	assert.False(t, ok)
}

func TestExtendDoesNotMutateOriginal(t *testing.T) {
	base := env.New()
	extended := base.Extend("x", types.Mono(types.Number))

	_, ok := base.Scheme("x")
	assert.False(t, ok)

	scheme, ok := extended.Scheme("x")
	require.True(t, ok)
	assert.Equal(t, types.Number, scheme.Body)
}

func TestGeneralizeExcludesEnvFreeVars(t *testing.T) {
	outer := types.NewVar(0)
	e := env.New().Extend("outer", types.Mono(outer))

	inner := types.NewVar(1)
	combined := &types.Function{Params: []types.Type{outer}, Return: inner}

	scheme := e.Generalize(combined)
	assert.Equal(t, []int{1}, scheme.Vars)
}

func TestBuiltinsBindBaseTypes(t *testing.T) {
	e := env.Builtins()
	for _, name := range []string{"Number", "String", "Boolean", "Any", "Nothing"} {
		_, ok := e.Scheme(name)
		assert.True(t, ok, name)
	}
}

func TestBuiltinsDoesNotBindBooleanLiteralNames(t *testing.T) {
	e := env.Builtins()
	for _, name := range []string{"True", "False"} {
		_, ok := e.Scheme(name)
		assert.False(t, ok, name)
	}
}
