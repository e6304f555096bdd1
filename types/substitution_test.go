package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ucle-lang/ucle/types"
)

func TestComposeMatchesSpecFormula(t *testing.T) {
	// s2 = {0 -> T1}, s1 = {1 -> Number}.
	// compose(s1, s2) should bind 0 -> Number (apply(s1, s2(0))) and keep
	// 1 -> Number from s1 (0 not shadowed by s1, but here dom(s1)\dom(s2) = {1}).
	s2 := types.SingletonSubstitution(0, types.NewVar(1))
	s1 := types.SingletonSubstitution(1, types.Number)

	composed := types.Compose(s1, s2)

	assert.Equal(t, types.Number, composed.Apply(types.NewVar(0)))
	assert.Equal(t, types.Number, composed.Apply(types.NewVar(1)))
}

func TestComposeLetsS2ShadowS1(t *testing.T) {
	s1 := types.SingletonSubstitution(0, types.Number)
	s2 := types.SingletonSubstitution(0, types.String)

	composed := types.Compose(s1, s2)

	// 0 is in dom(s2), so compose takes apply(s1, s2(0)) = apply(s1, String) = String.
	assert.Equal(t, types.String, composed.Apply(types.NewVar(0)))
}

func TestExtendDoesNotMutateOriginal(t *testing.T) {
	base := types.EmptySubstitution()
	extended := base.Extend(0, types.Number)

	assert.Equal(t, types.NewVar(0), base.Apply(types.NewVar(0)))
	assert.Equal(t, types.Number, extended.Apply(types.NewVar(0)))
}
