package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/types"
)

func TestUnifyIdenticalPrimsSucceeds(t *testing.T) {
	s := NewSupply()
	err := unify(s, construct.TInt(), construct.TInt())
	assert.NoError(t, err)
}

func TestUnifyMismatchedPrimsFails(t *testing.T) {
	s := NewSupply()
	err := unify(s, construct.TInt(), construct.TBool())
	require.Error(t, err)
	var mm *UnifyMismatchError
	assert.ErrorAs(t, err, &mm)
}

func TestUnifyVarBindsToConcreteType(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()
	require.NoError(t, unify(s, v, construct.TInt()))

	cell := v.Ref.(*types.Cell)
	assert.Equal(t, types.StateLink, cell.State())
	assert.Equal(t, "int", types.TypeString(types.Deref(v)))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()
	listOfV := construct.TList(v)

	err := unify(s, v, listOfV)
	require.Error(t, err)
	var occ *OccursCheckError
	assert.ErrorAs(t, err, &occ)
}

func TestUnifyFunCongruence(t *testing.T) {
	s := NewSupply()
	a := s.FreshVar()
	b := s.FreshVar()
	f1 := construct.TFun(a, construct.TInt())
	f2 := construct.TFun(construct.TBool(), b)

	require.NoError(t, unify(s, f1, f2))
	assert.Equal(t, "bool", types.TypeString(types.Deref(a)))
	assert.Equal(t, "int", types.TypeString(types.Deref(b)))
}

func TestUnifyLowersLevelOfEnclosedVar(t *testing.T) {
	s := NewSupply()
	outer := s.FreshVar() // allocated at baseLevel

	s.EnterLevel()
	inner := s.FreshCell() // allocated one level deeper
	fn := construct.TFun(&types.Var{Ref: inner}, construct.TInt())

	require.NoError(t, unify(s, outer, fn))
	s.LeaveLevel()

	assert.Equal(t, baseLevel, inner.Level(), "inner cell's level should be lowered to outer's shallower level")
}

func TestUnifyClosedClosedRowsMatch(t *testing.T) {
	s := NewSupply()
	r1 := construct.TRow(construct.RClosed(map[string]types.Type{"x": construct.TInt()}))
	r2 := construct.TRow(construct.RClosed(map[string]types.Type{"x": construct.TInt()}))

	assert.NoError(t, unify(s, r1, r2))
}

func TestUnifyClosedClosedRowsFieldMismatchFails(t *testing.T) {
	s := NewSupply()
	r1 := construct.TRow(construct.RClosed(map[string]types.Type{"x": construct.TInt()}))
	r2 := construct.TRow(construct.RClosed(map[string]types.Type{"y": construct.TInt()}))

	err := unify(s, r1, r2)
	require.Error(t, err)
	var mm *UnifyMismatchError
	assert.ErrorAs(t, err, &mm)
}

func TestUnifyOpenClosedRowSubsetSucceeds(t *testing.T) {
	s := NewSupply()
	tail := s.FreshRowVar()
	open := construct.TRow(construct.ROpen(map[string]types.Type{"x": construct.TInt()}, tail.Ref))
	closed := construct.TRow(construct.RClosed(map[string]types.Type{
		"x": construct.TInt(),
		"y": construct.TBool(),
	}))

	require.NoError(t, unify(s, open, closed))

	resolved, err := types.DerefRow(&types.RowVar{Ref: tail.Ref})
	require.NoError(t, err)
	rt, ok := resolved.(*types.RowTy)
	require.True(t, ok)
	assert.Equal(t, 1, rt.Fields.Len())
	assert.Nil(t, rt.Tail)
}

func TestUnifyOpenOpenRowAllocatesIndependentTails(t *testing.T) {
	s := NewSupply()
	tailA := s.FreshRowVar()
	tailB := s.FreshRowVar()
	rowA := construct.TRow(construct.ROpen(map[string]types.Type{"x": construct.TInt()}, tailA.Ref))
	rowB := construct.TRow(construct.ROpen(map[string]types.Type{"y": construct.TBool()}, tailB.Ref))

	require.NoError(t, unify(s, rowA, rowB))

	resolvedA, err := types.DerefRow(&types.RowVar{Ref: tailA.Ref})
	require.NoError(t, err)
	rtA, ok := resolvedA.(*types.RowTy)
	require.True(t, ok)
	assert.Equal(t, 1, rtA.Fields.Len(), "tailA should have picked up y")

	resolvedB, err := types.DerefRow(&types.RowVar{Ref: tailB.Ref})
	require.NoError(t, err)
	rtB, ok := resolvedB.(*types.RowTy)
	require.True(t, ok)
	assert.Equal(t, 1, rtB.Fields.Len(), "tailB should have picked up x")

	assert.NotEqual(t, rtA.Tail, rtB.Tail, "the two remainder tails must be distinct fresh variables")
}

func TestUnifyEmptyRowWithNonEmptyRowTyFails(t *testing.T) {
	s := NewSupply()
	empty := construct.TRow(construct.REmpty())
	nonEmpty := construct.TRow(construct.RClosed(map[string]types.Type{"x": construct.TInt()}))

	err := unify(s, empty, nonEmpty)
	require.Error(t, err)
	var mm *UnifyMismatchError
	assert.ErrorAs(t, err, &mm)
}
