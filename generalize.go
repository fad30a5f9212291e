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

package rowpoly

import (
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

// generalize quantifies every unbound variable reachable from ty whose
// level outlives the supply's current level, in left-to-right
// first-occurrence order, rewriting each to Bound in place. Variables at or
// below the current level remain free: they belong to an enclosing scope.
func generalize(supply *Supply, ty types.Type, term ir.Term) (types.TypeScheme, ir.Term) {
	g := &generalizer{level: supply.CurrentLevel(), seen: make(map[int]bool)}
	g.visit(ty)

	if len(g.quantifiers) == 0 {
		return types.Monomorphic(ty), term
	}

	b := types.NewVarListBuilder()
	for _, q := range g.quantifiers {
		b.Append(q)
	}
	return types.TypeScheme{Vars: b.Build(), Body: ty}, &ir.TyAbs{Vars: g.quantifiers, Body: term}
}

type generalizer struct {
	level       int
	seen        map[int]bool
	quantifiers []types.VarRef
}

func (g *generalizer) visit(t types.Type) {
	switch t := t.(type) {
	case *types.Var:
		g.visitVarRef(t.Ref)

	case *types.Fun:
		g.visit(t.Dom)
		g.visit(t.Codom)

	case *types.List:
		g.visit(t.Elem)

	case *types.Row:
		g.visitRow(t.Shape)

	case *types.Table:
		g.visitRow(t.Shape)

	default: // Prim, Cap, Forall (Forall cannot legally appear here)
	}
}

func (g *generalizer) visitRow(r types.RowShape) {
	switch r := r.(type) {
	case types.EmptyRow:
		return

	case *types.RowVar:
		g.visitVarRef(r.Ref)

	case *types.RowTy:
		g.flattenTail(r)
		r.Fields.Range(func(_ string, ft types.Type) bool {
			g.visit(ft)
			return true
		})
		if r.Tail != nil {
			g.visitVarRef(r.Tail)
		}
	}
}

// flattenTail inlines a chain of tail links that resolve to a ground row
// into r, so a single RowTy carries every known field once generalization
// reaches it.
func (g *generalizer) flattenTail(r *types.RowTy) {
	for r.Tail != nil {
		cell, ok := r.Tail.(*types.Cell)
		if !ok || cell.State() != types.StateLink {
			return
		}
		row, ok := cell.Link().(*types.Row)
		if !ok {
			return
		}
		switch inner := row.Shape.(type) {
		case types.EmptyRow:
			r.Tail = nil
		case *types.RowVar:
			r.Tail = inner.Ref
		case *types.RowTy:
			b := r.Fields.Builder()
			b.Merge(inner.Fields)
			r.Fields = b.Build()
			r.Tail = inner.Tail
		}
	}
}

// visitVarRef resolves ref through any Link chain (row tails may link
// directly to a *types.Row, not just another variable) and either
// quantifies a reachable Unbound cell or recurses into whatever ground
// type the chain ends at.
func (g *generalizer) visitVarRef(ref types.VarRef) {
	cell, ok := ref.(*types.Cell)
	if !ok {
		return // already-closed NamedDeBruijn; nothing left to generalize
	}

	resolved := types.Deref(&types.Var{Ref: cell})
	v, ok := resolved.(*types.Var)
	if !ok {
		g.visit(resolved)
		return
	}

	c, ok := v.Ref.(*types.Cell)
	if !ok || c.State() != types.StateUnbound {
		return
	}
	if c.Level() <= g.level {
		return
	}
	if g.seen[c.Unique()] {
		return
	}
	g.seen[c.Unique()] = true
	c.SetBound()
	g.quantifiers = append(g.quantifiers, c)
}
