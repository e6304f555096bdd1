package unify_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucle-lang/ucle/ast"
	"github.com/ucle-lang/ucle/constraint"
	"github.com/ucle-lang/ucle/ilerr"
	"github.com/ucle-lang/ucle/types"
	"github.com/ucle-lang/ucle/unify"
)

func newSet(t *testing.T, a, b *types.Var) *constraint.Set {
	t.Helper()
	return constraint.New().Equal(a, types.Number).Equal(b, types.Number)
}

func code(t *testing.T, err error) ilerr.Code {
	t.Helper()
	var ie ilerr.InferError
	require.True(t, stderrors.As(err, &ie), "error %v does not wrap an InferError", err)
	return ie.Code()
}

func TestUnifyArityMismatch(t *testing.T) {
	a := types.NewVar(0)
	f1 := &types.Function{Params: []types.Type{a}, Return: types.Number}
	f2 := &types.Function{Params: []types.Type{a, types.String}, Return: types.Number}

	_, err := unify.Unify(f1, f2, types.NewFreshSupply(), ast.Range{})
	require.Error(t, err)
	assert.Equal(t, ilerr.ArityMismatch, code(t, err))
}

func TestUnifyClosedRecordFieldMismatch(t *testing.T) {
	r1 := types.NewRecord([]string{"x"}, map[string]types.Type{"x": types.Number})
	r2 := types.NewRecord([]string{"y"}, map[string]types.Type{"y": types.Number})

	_, err := unify.Unify(r1, r2, types.NewFreshSupply(), ast.Range{})
	require.Error(t, err)
	assert.Equal(t, ilerr.RecordFieldMismatch, code(t, err))
}

func TestUnifyOpenRecordAgainstClosedSolvesRowAndField(t *testing.T) {
	alpha := types.NewVar(0)
	omega := types.NewVar(1)
	open := types.NewOpenRecord([]string{"x"}, map[string]types.Type{"x": alpha}, omega)
	closed := types.NewRecord([]string{"x", "y"}, map[string]types.Type{"x": types.Number, "y": types.String})

	sub, err := unify.Unify(open, closed, types.NewFreshSupply(), ast.Range{})
	require.NoError(t, err)

	assert.Equal(t, types.Number, sub.Apply(alpha))

	resolvedRow := sub.Apply(omega).(*types.Record)
	assert.Equal(t, []string{"y"}, resolvedRow.Order)
	assert.Equal(t, types.String, resolvedRow.Fields["y"])
	assert.Nil(t, resolvedRow.Row)
}

// TestUnifyDoublyOpenRecordsWithDisjointFields is a regression test for a
// stack overflow: unifying two open records that each carry a field the
// other lacks used to bind each side's row variable to an extension record
// trailing into the *other* side's own row variable, so composing the two
// bindings produced a substitution that referred to itself, and any later
// Apply recursed forever chasing Var -> Record -> Var. Both row variables
// must resolve to closed-off structures that terminate when applied.
func TestUnifyDoublyOpenRecordsWithDisjointFields(t *testing.T) {
	fresh := types.NewFreshSupply()
	alpha := fresh.FreshVar()
	beta := fresh.FreshVar()
	omega1 := fresh.FreshVar()
	omega2 := fresh.FreshVar()
	r1 := types.NewOpenRecord([]string{"x"}, map[string]types.Type{"x": alpha}, omega1)
	r2 := types.NewOpenRecord([]string{"y"}, map[string]types.Type{"y": beta}, omega2)

	sub, err := unify.Unify(r1, r2, fresh, ast.Range{})
	require.NoError(t, err)

	resolved1 := sub.Apply(r1).(*types.Record)
	resolved2 := sub.Apply(r2).(*types.Record)
	assert.ElementsMatch(t, []string{"x", "y"}, resolved1.Order)
	assert.ElementsMatch(t, []string{"x", "y"}, resolved2.Order)
	assert.Equal(t, alpha, resolved1.Fields["x"])
	assert.Equal(t, beta, resolved1.Fields["y"])

	// applying sub again must be a no-op: the trailing row variables the
	// fix mints are never themselves bound, so there is no cycle left to
	// chase.
	assert.Equal(t, resolved1, sub.Apply(resolved1))
	assert.Equal(t, resolved2, sub.Apply(resolved2))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	v := types.NewVar(0)
	selfReferential := &types.Function{Params: []types.Type{v}, Return: types.Number}

	_, err := unify.Unify(v, selfReferential, types.NewFreshSupply(), ast.Range{})
	require.Error(t, err)
	assert.Equal(t, ilerr.RecursiveType, code(t, err))
}

func TestUnifyLiteralAgainstMatchingNamedSucceeds(t *testing.T) {
	lit := &types.Literal{Value: int64(42), Base: types.Number}
	_, err := unify.Unify(lit, types.Number, types.NewFreshSupply(), ast.Range{})
	require.NoError(t, err)
}

func TestUnifyLiteralAgainstMismatchedNamedFails(t *testing.T) {
	lit := &types.Literal{Value: int64(42), Base: types.Number}
	_, err := unify.Unify(lit, types.String, types.NewFreshSupply(), ast.Range{})
	require.Error(t, err)
	assert.Equal(t, ilerr.UnificationFailure, code(t, err))
}

func TestSolveFoldsConstraintsInOrder(t *testing.T) {
	a := types.NewVar(0)
	b := types.NewVar(1)
	cs := newSet(t, a, b)

	sub, err := unify.Solve(cs, types.NewFreshSupply(), ast.Range{})
	require.NoError(t, err)
	assert.Equal(t, types.Number, sub.Apply(a))
	assert.Equal(t, types.Number, sub.Apply(b))
}
