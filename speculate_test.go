package rowpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/types"
)

func TestCanUnifySucceedsWithoutBindingVars(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()

	assert.True(t, CanUnify(s, v, construct.TInt()))

	cell := v.Ref.(*types.Cell)
	assert.Equal(t, types.StateUnbound, cell.State(), "CanUnify must not leave a trial binding in place")
}

func TestCanUnifyReportsFailureWithoutBindingVars(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()
	fn := construct.TFun(v, construct.TInt())

	assert.False(t, CanUnify(s, v, fn), "v occurs in fn, so this should fail the occurs check")

	cell := v.Ref.(*types.Cell)
	assert.Equal(t, types.StateUnbound, cell.State())
}

func TestCanUnifyLeavesLevelLoweringUndone(t *testing.T) {
	s := NewSupply()
	outer := s.FreshVar()

	s.EnterLevel()
	inner := s.FreshCell()
	deeperLevel := inner.Level()
	fn := construct.TFun(&types.Var{Ref: inner}, construct.TInt())

	require.True(t, CanUnify(s, outer, fn))
	s.LeaveLevel()

	assert.Equal(t, deeperLevel, inner.Level(), "a speculative unification must not leave level lowering in place")
}

func TestUnifyAfterCanUnifyStillWorks(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()

	require.True(t, CanUnify(s, v, construct.TInt()))
	require.NoError(t, unify(s, v, construct.TInt()), "a real unification must still succeed after a speculative one")
}
