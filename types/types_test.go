package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucle-lang/ucle/types"
)

func TestVarString(t *testing.T) {
	v := types.NewVar(7)
	assert.Equal(t, "T7", v.String())
}

func TestFunctionStringParenthesization(t *testing.T) {
	inner := &types.Function{Params: []types.Type{types.Number}, Return: types.String}

	single := &types.Function{Params: []types.Type{types.Number}, Return: types.Boolean}
	assert.Equal(t, "Number -> Boolean", single.String())

	singleFunc := &types.Function{Params: []types.Type{inner}, Return: types.Boolean}
	assert.Equal(t, "(Number -> String) -> Boolean", singleFunc.String())

	tupleOfFuncs := &types.Function{Params: []types.Type{inner, types.Boolean}, Return: types.Boolean}
	assert.Equal(t, "(Number -> String, Boolean) -> Boolean", tupleOfFuncs.String())
}

func TestRecordStringOpenVsClosed(t *testing.T) {
	closed := types.NewRecord([]string{"x", "y"}, map[string]types.Type{"x": types.Number, "y": types.String})
	assert.Equal(t, "rect { x: Number, y: String }", closed.String())

	open := types.NewOpenRecord([]string{"x"}, map[string]types.Type{"x": types.Number}, types.NewVar(3))
	assert.Equal(t, "rect { x: Number | T3 }", open.String())
}

func TestApplyChasesTransitiveBindings(t *testing.T) {
	a, b := types.NewVar(1), types.NewVar(2)
	sub := types.SingletonSubstitution(1, b).Extend(2, types.Number)

	assert.Equal(t, types.Number, a.Apply(sub))
}

func TestApplyFlattensRowExtension(t *testing.T) {
	row := types.NewVar(0)
	open := types.NewOpenRecord([]string{"x"}, map[string]types.Type{"x": types.Number}, row)

	extension := types.NewRecord([]string{"y"}, map[string]types.Type{"y": types.String})
	sub := types.SingletonSubstitution(row.ID, extension)

	got := open.Apply(sub).(*types.Record)
	require.Equal(t, []string{"x", "y"}, got.Order)
	assert.Nil(t, got.Row)
	assert.Equal(t, types.Number, got.Fields["x"])
	assert.Equal(t, types.String, got.Fields["y"])
}

func TestOccursCheck(t *testing.T) {
	v := types.NewVar(5)
	fn := &types.Function{Params: []types.Type{v}, Return: types.Number}
	assert.True(t, types.Occurs(5, fn))
	assert.False(t, types.Occurs(6, fn))
}

func TestFreeVarsOfRecordIncludesRow(t *testing.T) {
	row := types.NewVar(9)
	r := types.NewOpenRecord([]string{"x"}, map[string]types.Type{"x": types.NewVar(1)}, row)
	assert.ElementsMatch(t, []int{1, 9}, r.FreeVars())
}

func TestLiteralStringAndApplyIsNoOp(t *testing.T) {
	lit := &types.Literal{Value: "hi", Base: types.String}
	assert.Equal(t, `"hi"`, lit.String())
	assert.Same(t, lit, lit.Apply(types.SingletonSubstitution(0, types.Number)).(*types.Literal))
	assert.Nil(t, lit.FreeVars())
}
