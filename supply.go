package rowpoly

import (
	"strconv"

	"github.com/rowpoly/rowpoly/types"
)

// baseLevel is the level the driver enters at the root of a run; enter_level
// is called once before inferring the root term, matching a top-level let.
const baseLevel = 1

// Supply is the process-scoped unique counter and level register a single
// inference run threads through every fresh type variable it allocates.
// A Supply is not safe for concurrent use; independent runs must use
// independent Supplies (see the concurrency notes on Context).
type Supply struct {
	nextUnique  int
	level       int
	speculating bool
	stash       []types.CellSnapshot
}

// NewSupply creates a Supply starting at unique 0 and level baseLevel.
func NewSupply() *Supply {
	return &Supply{nextUnique: 0, level: baseLevel}
}

// NewSupplyFrom continues numbering from an existing counter, so a
// downstream pass can keep allocating unique ids without colliding with
// ones already handed out by a prior run.
func NewSupplyFrom(nextUnique int) *Supply {
	return &Supply{nextUnique: nextUnique, level: baseLevel}
}

// NextUnique returns the counter value that will be handed out next,
// letting a caller continue numbering in a subsequent run.
func (s *Supply) NextUnique() int { return s.nextUnique }

func (s *Supply) freshUnique() int {
	u := s.nextUnique
	s.nextUnique++
	return u
}

// FreshCell allocates an Unbound cell at the current level.
func (s *Supply) FreshCell() *types.Cell {
	u := s.freshUnique()
	return types.NewUnbound("a_"+strconv.Itoa(u), u, s.level)
}

// FreshVar allocates an Unbound cell at the current level and wraps it as
// a Var occurrence.
func (s *Supply) FreshVar() *types.Var {
	return &types.Var{Ref: s.FreshCell()}
}

// FreshRowVar allocates an Unbound cell at the current level and wraps it
// as a RowVar occurrence.
func (s *Supply) FreshRowVar() *types.RowVar {
	return &types.RowVar{Ref: s.FreshCell()}
}

// EnterLevel increments the level register. Called before inferring a
// let-binding's right-hand side and once at the root of a run.
func (s *Supply) EnterLevel() { s.level++ }

// LeaveLevel decrements the level register.
func (s *Supply) LeaveLevel() { s.level-- }

// CurrentLevel observes the level register.
func (s *Supply) CurrentLevel() int { return s.level }

// stashLink records cell's current state before a mutation, when s is in
// speculative mode, so CanUnify can undo a trial unification's bindings.
func (s *Supply) stashLink(cell *types.Cell) {
	if s.speculating {
		s.stash = append(s.stash, cell.Snapshot())
	}
}

// unstashLinks restores the n most recently stashed cells, most recent
// first, and drops them from the stash.
func (s *Supply) unstashLinks(n int) {
	if n <= 0 {
		return
	}
	stash := s.stash
	for i := len(stash) - 1; i > len(stash)-1-n; i-- {
		stash[i].Restore()
	}
	s.stash = stash[:len(stash)-n]
}
