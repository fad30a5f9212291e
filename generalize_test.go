package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

func TestGeneralizeGroundTypeStaysMonomorphic(t *testing.T) {
	s := NewSupply()
	term := construct.Var("x", 0)

	scheme, elaborated := generalize(s, construct.TInt(), term)

	assert.Equal(t, 0, scheme.Vars.Len())
	assert.Same(t, term, elaborated, "no TyAbs should wrap an already-monomorphic term")
}

func TestGeneralizeQuantifiesFreshVarsAboveCurrentLevel(t *testing.T) {
	s := NewSupply()
	s.EnterLevel() // enter the let's own level, as inferLet does
	v := s.FreshVar()
	s.LeaveLevel()

	scheme, elaborated := generalize(s, v, construct.Var("id", 0))

	require.Equal(t, 1, scheme.Vars.Len())
	tyAbs, ok := elaborated.(*ir.TyAbs)
	require.True(t, ok)
	assert.Len(t, tyAbs.Vars, 1)

	cell := v.Ref.(*types.Cell)
	assert.Equal(t, types.StateBound, cell.State())
}

func TestGeneralizeLeavesEnclosingLevelVarsFree(t *testing.T) {
	s := NewSupply()
	outer := s.FreshVar() // allocated at the current (enclosing) level

	scheme, _ := generalize(s, outer, construct.Var("x", 0))

	assert.Equal(t, 0, scheme.Vars.Len())
	cell := outer.Ref.(*types.Cell)
	assert.Equal(t, types.StateUnbound, cell.State(), "a variable from an enclosing scope must not be quantified")
}

func TestGeneralizeCollectsFirstOccurrenceOrder(t *testing.T) {
	s := NewSupply()
	s.EnterLevel()
	a := s.FreshVar()
	b := s.FreshVar()
	s.LeaveLevel()

	// b -> a -> b: b should be quantified before a, since it occurs first.
	ty := construct.TFun(b, construct.TFun(a, b))

	scheme, _ := generalize(s, ty, construct.Var("f", 0))

	require.Equal(t, 2, scheme.Vars.Len())
	first := scheme.Vars.Get(0).(*types.Cell)
	assert.Same(t, b.Ref.(*types.Cell), first)
}

func TestGeneralizeDedupesRepeatedOccurrences(t *testing.T) {
	s := NewSupply()
	s.EnterLevel()
	a := s.FreshVar()
	s.LeaveLevel()

	ty := construct.TFun(a, a)
	scheme, _ := generalize(s, ty, construct.Var("id", 0))

	assert.Equal(t, 1, scheme.Vars.Len())
}

func TestGeneralizeFlattensLinkedRowTail(t *testing.T) {
	s := NewSupply()
	s.EnterLevel()
	tail := s.FreshRowVar()
	outer := &types.RowTy{
		Fields: types.SingletonRowFields("x", construct.TInt()),
		Tail:   tail.Ref,
	}

	inner := &types.RowTy{Fields: types.SingletonRowFields("y", construct.TBool())}
	tail.Ref.(*types.Cell).SetLink(&types.Row{Shape: inner})
	s.LeaveLevel()

	scheme, _ := generalize(s, &types.Row{Shape: outer}, construct.Var("r", 0))

	assert.Equal(t, 0, scheme.Vars.Len(), "flattening a closed inner row shouldn't quantify anything")
	assert.Equal(t, 2, outer.Fields.Len(), "outer row should have inlined the linked row's field")
	assert.Nil(t, outer.Tail, "tail should collapse once the linked row is closed")
}
