package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

// forallAB builds ∀a b. a -> b -> a, the scheme for a const-like function.
func forallAB() (types.TypeScheme, *types.Cell, *types.Cell) {
	a := types.NewUnbound("a", 0, baseLevel)
	b := types.NewUnbound("b", 1, baseLevel)
	a.SetBound()
	b.SetBound()
	body := construct.TFunN([]types.Type{&types.Var{Ref: a}, &types.Var{Ref: b}}, &types.Var{Ref: a})
	vars := types.NewVarListBuilder()
	vars.Append(a)
	vars.Append(b)
	return types.TypeScheme{Vars: vars.Build(), Body: body}, a, b
}

func TestInstantiateMonomorphicReturnsUnchanged(t *testing.T) {
	s := NewSupply()
	scheme := types.Monomorphic(construct.TInt())
	term := construct.Var("x", 0)

	ty, elaborated, err := instantiate(s, scheme, term)
	require.NoError(t, err)
	assert.Same(t, term, elaborated)
	assert.Equal(t, "int", types.TypeString(ty))
}

func TestInstantiateFreshensEachQuantifierIndependently(t *testing.T) {
	s := NewSupply()
	scheme, _, _ := forallAB()
	term := construct.Var("const", 0)

	ty, elaborated, err := instantiate(s, scheme, term)
	require.NoError(t, err)

	fn, ok := ty.(*types.Fun)
	require.True(t, ok)
	inner, ok := fn.Codom.(*types.Fun)
	require.True(t, ok)

	domCell := fn.Dom.(*types.Var).Ref.(*types.Cell)
	resultCell := inner.Codom.(*types.Var).Ref.(*types.Cell)
	assert.Same(t, domCell, resultCell, "both occurrences of a should share the same fresh cell")

	codomCell := inner.Dom.(*types.Var).Ref.(*types.Cell)
	assert.NotSame(t, domCell, codomCell, "a and b should freshen to distinct cells")

	app, ok := elaborated.(*ir.TyApp)
	require.True(t, ok)
	assert.Len(t, app.TypeArgs, 2)
}

func TestInstantiateImportedNonForallPassesThrough(t *testing.T) {
	s := NewSupply()
	ty, fresh, err := instantiateImported(s, construct.TInt())
	require.NoError(t, err)
	assert.Nil(t, fresh)
	assert.Equal(t, "int", types.TypeString(ty))
}

func TestInstantiateImportedFreshensDeBruijnIndices(t *testing.T) {
	s := NewSupply()
	a := types.NamedDeBruijn{Index: 0, DisplayName: "a"}
	sig := construct.TForall(types.SingletonVarList(a),
		construct.TFun(&types.Var{Ref: a}, &types.Var{Ref: a}))

	ty, fresh, err := instantiateImported(s, sig)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	fn, ok := ty.(*types.Fun)
	require.True(t, ok)
	domCell := fn.Dom.(*types.Var).Ref.(*types.Cell)
	codomCell := fn.Codom.(*types.Var).Ref.(*types.Cell)
	assert.Same(t, domCell, codomCell)
	assert.Same(t, fresh[0].(*types.Cell), domCell)
}

func TestInstantiateImportedNestedForallFails(t *testing.T) {
	s := NewSupply()
	inner := construct.TForall(types.NewVarList(), construct.TInt())
	outer := construct.TForall(types.SingletonVarList(types.NamedDeBruijn{Index: 0, DisplayName: "a"}),
		construct.TFun(inner, construct.TInt()))

	_, _, err := instantiateImported(s, outer)
	require.Error(t, err)
	var imp *ImpredicativeError
	assert.ErrorAs(t, err, &imp)
}
