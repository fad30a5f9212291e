// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

// CellState is the current state of a mutable type-variable Cell.
type CellState int

const (
	StateUnbound CellState = iota
	StateBound
	StateLink
)

// VarRef is implemented by every representation a Var or RowVar can point
// at: a mutable inference-time Cell, or an immutable NamedDeBruijn index
// produced by de Bruijn closure. Sealing the interface to these two lets
// Var, RowVar, and RowTy's tail be reused unchanged across both the
// pre-closure and post-closure representations.
type VarRef interface {
	varRef()
}

func (*Cell) varRef() {}

// Cell is a mutable type-variable cell. It carries a display name and a
// process-local Unique for diagnostics and de Bruijn closure, and moves
// through exactly three states over its lifetime:
//
//	Unbound(name, unique, level)  fresh, not yet unified with anything
//	Bound(name, unique)           generalized in place at scheme close
//	Link(type)                    unified with a concrete type
//
// Outside speculative unification a cell never moves backwards: once Bound
// or Link, it stays that way. A speculative unification records cells with
// Snapshot and puts them back with CellSnapshot.Restore, which can return a
// Link cell to Unbound.
type Cell struct {
	name   string
	unique int
	level  int
	link   Type
	state  CellState
}

// NewUnbound allocates a fresh Unbound cell at the given level.
func NewUnbound(name string, unique, level int) *Cell {
	return &Cell{name: name, unique: unique, level: level, state: StateUnbound}
}

func (c *Cell) State() CellState { return c.state }
func (c *Cell) Name() string     { return c.name }
func (c *Cell) Unique() int      { return c.unique }

// Level panics if called on a Bound or Link cell; the level register only
// has meaning for Unbound cells.
func (c *Cell) Level() int {
	if c.state != StateUnbound {
		panic("types: Level of non-Unbound cell")
	}
	return c.level
}

// Link returns the type this cell was unified to. Panics unless State() is
// StateLink.
func (c *Cell) Link() Type {
	if c.state != StateLink {
		panic("types: Link of non-Link cell")
	}
	return c.link
}

// SetLevel lowers (or raises) an Unbound cell's level in place, used by
// the occurs-check-with-level-lowering rule during unification.
func (c *Cell) SetLevel(level int) {
	if c.state != StateUnbound {
		panic("types: SetLevel of non-Unbound cell")
	}
	c.level = level
}

// SetLink transitions an Unbound cell to Link(t). Only a CellSnapshot taken
// beforehand can undo it.
func (c *Cell) SetLink(t Type) {
	c.link, c.state = t, StateLink
}

// SetBound transitions an Unbound cell to Bound(name, unique) in place, so
// existing Var{Ref: c} occurrences observe the transition without
// rewriting the term.
func (c *Cell) SetBound() {
	c.link, c.state = nil, StateBound
}

// CellSnapshot captures a Cell's state at a point in time, so a trial
// mutation can later be undone without disturbing cells that were never
// touched. Used by speculative unification.
type CellSnapshot struct {
	cell  *Cell
	state CellState
	level int
	link  Type
}

// Snapshot captures c's current state.
func (c *Cell) Snapshot() CellSnapshot {
	return CellSnapshot{cell: c, state: c.state, level: c.level, link: c.link}
}

// Restore returns the snapshotted cell to the state it was in when
// Snapshot was called.
func (s CellSnapshot) Restore() {
	s.cell.state, s.cell.level, s.cell.link = s.state, s.level, s.link
}

// Deref follows a chain of Link cells to the underlying type, stopping at
// the first non-Var type or the first Unbound/Bound cell.
func Deref(t Type) Type {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		c, ok := v.Ref.(*Cell)
		if !ok || c.State() != StateLink {
			return t
		}
		t = c.Link()
	}
}
