package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

func TestCloseSchemeMonomorphicPassesThrough(t *testing.T) {
	scheme := types.Monomorphic(construct.TInt())
	term := construct.IntConstant("1")

	ty, closed, err := closeScheme(scheme, term)
	require.NoError(t, err)
	assert.Equal(t, "int", types.TypeString(ty))
	assert.Same(t, term, closed)
}

func TestCloseSchemeSimpleForall(t *testing.T) {
	s := NewSupply()
	s.EnterLevel()
	v := s.FreshVar()
	s.LeaveLevel()
	scheme, elaborated := generalize(s, v, construct.Lam1("x", construct.Var("x", 0)))

	ty, closed, err := closeScheme(scheme, elaborated)
	require.NoError(t, err)

	forall, ok := ty.(*types.Forall)
	require.True(t, ok)
	require.Equal(t, 1, forall.Vars.Len())
	closedVar, ok := forall.Body.(*types.Var)
	require.True(t, ok)
	nd, ok := closedVar.Ref.(types.NamedDeBruijn)
	require.True(t, ok)
	assert.Equal(t, 0, nd.Index)

	_, ok = closed.(*ir.TyAbs)
	assert.True(t, ok)
}

// TestCloseTermComputesRelativeIndicesAcrossNestedBinders builds a term with
// an outer TyAbs quantifying cellA and, nested inside its body, an inner
// TyAbs quantifying cellB. A doubly-nested Lam references both cells from
// two binders deep, exercising the depth-minus-level-minus-one formula.
func TestCloseTermComputesRelativeIndicesAcrossNestedBinders(t *testing.T) {
	cellA := types.NewUnbound("a", 0, baseLevel)
	cellA.SetBound()
	cellB := types.NewUnbound("b", 1, baseLevel+1)
	cellB.SetBound()

	term := &ir.TyAbs{
		Vars: []types.VarRef{cellA},
		Body: &ir.Let{
			Name: "y",
			Rhs: &ir.TyAbs{
				Vars: []types.VarRef{cellB},
				Body: &ir.Lam{
					Params: []ir.Param{
						{Name: "p", Type: &types.Var{Ref: cellA}},
						{Name: "q", Type: &types.Var{Ref: cellB}},
					},
					Body: construct.Var("p", 1),
				},
			},
			Body: construct.Var("x", 0),
		},
	}

	vars := types.NewVarListBuilder()
	vars.Append(cellA)
	scheme := types.TypeScheme{Vars: vars.Build(), Body: &types.Var{Ref: cellA}}

	ty, closed, err := closeScheme(scheme, term)
	require.NoError(t, err)

	forall, ok := ty.(*types.Forall)
	require.True(t, ok)
	topNd := forall.Body.(*types.Var).Ref.(types.NamedDeBruijn)
	assert.Equal(t, 0, topNd.Index, "top scheme's own quantifier stays at its local index")

	outerAbs := closed.(*ir.TyAbs)
	let := outerAbs.Body.(*ir.Let)
	innerAbs := let.Rhs.(*ir.TyAbs)
	lam := innerAbs.Body.(*ir.Lam)

	pIndex := lam.Params[0].Type.(*types.Var).Ref.(types.NamedDeBruijn).Index
	qIndex := lam.Params[1].Type.(*types.Var).Ref.(types.NamedDeBruijn).Index
	assert.Equal(t, 1, pIndex, "a reference from two binders deep to the outer quantifier is relative index 1")
	assert.Equal(t, 0, qIndex, "a reference to the immediately enclosing quantifier is relative index 0")
}

func TestCloseTypeEscapedVariableFails(t *testing.T) {
	loose := types.NewUnbound("a", 0, baseLevel)
	scheme := types.TypeScheme{Vars: types.EmptyVarList, Body: &types.Var{Ref: loose}}

	_, _, err := closeScheme(scheme, construct.Var("x", 0))
	require.Error(t, err)
	var esc *EscapedVariableError
	assert.ErrorAs(t, err, &esc)
}

func TestCloseTypeImpredicativeFails(t *testing.T) {
	nested := construct.TForall(types.NewVarList(), construct.TInt())
	scheme := types.TypeScheme{Vars: types.EmptyVarList, Body: nested}

	_, _, err := closeScheme(scheme, construct.Var("x", 0))
	require.Error(t, err)
	var imp *ImpredicativeError
	assert.ErrorAs(t, err, &imp)
}

func TestCloseRowClosesBoundTailToNamedDeBruijn(t *testing.T) {
	tail := types.NewUnbound("r", 0, baseLevel)
	tail.SetBound()

	shape := &types.RowTy{Fields: types.SingletonRowFields("x", construct.TInt()), Tail: tail}

	vars := types.NewVarListBuilder()
	vars.Append(tail)
	scheme := types.TypeScheme{Vars: vars.Build(), Body: &types.Row{Shape: shape}}
	term := &ir.TyAbs{Vars: []types.VarRef{tail}, Body: construct.Var("r", 0)}

	ty, _, err := closeScheme(scheme, term)
	require.NoError(t, err)

	forall := ty.(*types.Forall)
	row := forall.Body.(*types.Row)
	rt := row.Shape.(*types.RowTy)
	assert.Equal(t, 1, rt.Fields.Len())
	rowVarTail, ok := rt.Tail.(types.NamedDeBruijn)
	require.True(t, ok)
	assert.Equal(t, 0, rowVarTail.Index)
}
