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
	"github.com/rowpoly/rowpoly/types"
)

// unify makes a and b structurally equal in place, or fails with
// UnifyMismatch, OccursCheck, or Impredicative. supply provides fresh tail
// variables for open/open row unification.
func unify(supply *Supply, a, b types.Type) error {
	a, b = types.Deref(a), types.Deref(b)

	if av, ok := a.(*types.Var); ok {
		if bv, ok := b.(*types.Var); ok {
			if ac, ok := av.Ref.(*types.Cell); ok {
				if bc, ok := bv.Ref.(*types.Cell); ok && ac == bc {
					return nil
				}
			}
		}
		return unifyVar(supply, av, b)
	}
	if bv, ok := b.(*types.Var); ok {
		return unifyVar(supply, bv, a)
	}

	switch a := a.(type) {
	case *types.Prim:
		b, ok := b.(*types.Prim)
		if !ok || a.Kind != b.Kind {
			return newUnifyMismatch(a, b, "")
		}
		return nil

	case *types.Fun:
		b, ok := b.(*types.Fun)
		if !ok {
			return newUnifyMismatch(a, b, "")
		}
		if err := unify(supply, a.Dom, b.Dom); err != nil {
			return err
		}
		return unify(supply, a.Codom, b.Codom)

	case *types.List:
		b, ok := b.(*types.List)
		if !ok {
			return newUnifyMismatch(a, b, "")
		}
		return unify(supply, a.Elem, b.Elem)

	case *types.Row:
		b, ok := b.(*types.Row)
		if !ok {
			return newUnifyMismatch(a, b, "")
		}
		return unifyRow(supply, a.Shape, b.Shape)

	case *types.Table:
		b, ok := b.(*types.Table)
		if !ok {
			return newUnifyMismatch(a, b, "")
		}
		return unifyRow(supply, a.Shape, b.Shape)

	case *types.Cap:
		if _, ok := b.(*types.Cap); ok {
			return nil
		}
		return newUnifyMismatch(a, b, "")

	case *types.Forall:
		return newImpredicative(a)
	}

	return newUnifyMismatch(a, b, "")
}

// unifyVar dispatches on v's cell state, following Link transparently and
// treating Bound as opaque (only reached via elaboration, after which the
// variable has already been re-instantiated fresh).
func unifyVar(supply *Supply, v *types.Var, other types.Type) error {
	cell, ok := v.Ref.(*types.Cell)
	if !ok {
		return newUnifyMismatch(v, other, "cannot unify a closed type variable")
	}
	return unifyVarCell(supply, cell, other)
}

func unifyVarCell(supply *Supply, cell *types.Cell, other types.Type) error {
	switch cell.State() {
	case types.StateLink:
		return unify(supply, cell.Link(), other)

	case types.StateBound:
		return nil

	default: // StateUnbound
		if ov, ok := types.Deref(other).(*types.Var); ok {
			if oc, ok := ov.Ref.(*types.Cell); ok && oc == cell {
				return nil
			}
		}
		if err := occursAdjustLevels(supply, cell, other); err != nil {
			return err
		}
		supply.stashLink(cell)
		cell.SetLink(other)
		return nil
	}
}

// occursAdjustLevels performs the occurs check with level lowering: any
// Unbound cell reachable from t other than v has its level lowered to
// min(its level, v's level), preserving the generalization invariant that
// nothing reachable from v outlives v's own level.
func occursAdjustLevels(supply *Supply, v *types.Cell, t types.Type) error {
	switch t := t.(type) {
	case *types.Var:
		return occursAdjustLevelsVarRef(supply, v, t.Ref, func() types.Type { return t })

	case *types.Fun:
		if err := occursAdjustLevels(supply, v, t.Dom); err != nil {
			return err
		}
		return occursAdjustLevels(supply, v, t.Codom)

	case *types.List:
		return occursAdjustLevels(supply, v, t.Elem)

	case *types.Row:
		return occursAdjustLevelsRow(supply, v, t.Shape)

	case *types.Table:
		return occursAdjustLevelsRow(supply, v, t.Shape)

	default: // Prim, Cap, Forall (Forall cannot legally appear here)
		return nil
	}
}

func occursAdjustLevelsRow(supply *Supply, v *types.Cell, r types.RowShape) error {
	switch r := r.(type) {
	case types.EmptyRow:
		return nil

	case *types.RowVar:
		return occursAdjustLevelsVarRef(supply, v, r.Ref, func() types.Type { return &types.Var{Ref: r.Ref} })

	case *types.RowTy:
		var err error
		r.Fields.Range(func(_ string, ft types.Type) bool {
			err = occursAdjustLevels(supply, v, ft)
			return err == nil
		})
		if err != nil {
			return err
		}
		if r.Tail == nil {
			return nil
		}
		return occursAdjustLevelsVarRef(supply, v, r.Tail, func() types.Type { return &types.Var{Ref: r.Tail} })
	}
	return nil
}

// occursAdjustLevelsVarRef applies the occurs check/level-lowering rule to
// a single VarRef, whether it came from a Var or a row tail. asType builds
// the Type to report in an OccursCheckError, matching how the reference was
// originally wrapped.
func occursAdjustLevelsVarRef(supply *Supply, v *types.Cell, ref types.VarRef, asType func() types.Type) error {
	cell, ok := ref.(*types.Cell)
	if !ok {
		return nil // closed variable, cannot alias v
	}
	switch cell.State() {
	case types.StateLink:
		return occursAdjustLevels(supply, v, cell.Link())
	case types.StateBound:
		return nil
	default: // StateUnbound
		if cell == v {
			return newOccursCheck(v, asType())
		}
		if cell.Level() > v.Level() {
			supply.stashLink(cell)
			cell.SetLevel(v.Level())
		}
		return nil
	}
}

// CanUnify reports whether a and b can be unified, without leaving behind
// any of the cell bindings a trial unification would otherwise make. It is
// not called anywhere in this package's own inference path — there is no
// ad-hoc overload resolution here to drive it — but is exposed for a
// downstream caller that wants to probe applicability before committing to
// an instantiation.
func CanUnify(supply *Supply, a, b types.Type) bool {
	mark := len(supply.stash)
	wasSpeculating := supply.speculating
	supply.speculating = true
	err := unify(supply, a, b)
	supply.unstashLinks(len(supply.stash) - mark)
	supply.speculating = wasSpeculating
	return err == nil
}

// unifyRow implements the row-unification table: a RowVar side dispatches
// to unifyVarCell against the other side wrapped as a Row; EmptyRow/EmptyRow
// succeeds; an open row against EmptyRow requires no known fields, binding
// its tail to EmptyRow; two closed rows require equal key sets; open versus
// closed requires the open side's keys to be a subset, binding its tail to
// the closed side's remaining fields; two open rows unify their common
// fields and bind each tail to the other's exclusive fields plus a fresh
// tail of its own.
func unifyRow(supply *Supply, r1, r2 types.RowShape) error {
	if rv, ok := r1.(*types.RowVar); ok {
		return unifyRowVar(supply, rv, r2)
	}
	if rv, ok := r2.(*types.RowVar); ok {
		return unifyRowVar(supply, rv, r1)
	}

	_, e1 := r1.(types.EmptyRow)
	_, e2 := r2.(types.EmptyRow)
	if e1 && e2 {
		return nil
	}

	t1, ok1 := r1.(*types.RowTy)
	t2, ok2 := r2.(*types.RowTy)

	if ok1 && e2 {
		return unifyRowVsEmpty(supply, t1)
	}
	if ok2 && e1 {
		return unifyRowVsEmpty(supply, t2)
	}
	if !ok1 || !ok2 {
		return newUnifyMismatch(&types.Row{Shape: r1}, &types.Row{Shape: r2}, "malformed row shape")
	}

	if err := unifyCommonFields(supply, t1.Fields, t2.Fields); err != nil {
		return err
	}

	switch {
	case t1.Tail == nil && t2.Tail == nil:
		if t1.Fields.Len() != t2.Fields.Len() || fieldsOnlyIn(t1.Fields, t2.Fields).Len() != 0 {
			return newUnifyMismatch(&types.Row{Shape: t1}, &types.Row{Shape: t2}, "row key sets differ")
		}
		return nil

	case t1.Tail != nil && t2.Tail == nil:
		if fieldsOnlyIn(t1.Fields, t2.Fields).Len() != 0 {
			return newUnifyMismatch(&types.Row{Shape: t1}, &types.Row{Shape: t2}, "open row has fields the closed row lacks")
		}
		rest := fieldsOnlyIn(t2.Fields, t1.Fields)
		return unifyVarRefWithRow(supply, t1.Tail, &types.RowTy{Fields: rest, Tail: nil})

	case t1.Tail == nil && t2.Tail != nil:
		if fieldsOnlyIn(t2.Fields, t1.Fields).Len() != 0 {
			return newUnifyMismatch(&types.Row{Shape: t1}, &types.Row{Shape: t2}, "open row has fields the closed row lacks")
		}
		rest := fieldsOnlyIn(t1.Fields, t2.Fields)
		return unifyVarRefWithRow(supply, t2.Tail, &types.RowTy{Fields: rest, Tail: nil})

	default: // both open
		onlyLeft := fieldsOnlyIn(t1.Fields, t2.Fields)
		onlyRight := fieldsOnlyIn(t2.Fields, t1.Fields)
		freshL := supply.FreshRowVar().Ref
		freshR := supply.FreshRowVar().Ref
		if err := unifyVarRefWithRow(supply, t1.Tail, &types.RowTy{Fields: onlyRight, Tail: freshL}); err != nil {
			return err
		}
		return unifyVarRefWithRow(supply, t2.Tail, &types.RowTy{Fields: onlyLeft, Tail: freshR})
	}
}

func unifyRowVar(supply *Supply, rv *types.RowVar, other types.RowShape) error {
	return unifyVarRefWithRow(supply, rv.Ref, other)
}

func unifyVarRefWithRow(supply *Supply, ref types.VarRef, shape types.RowShape) error {
	cell, ok := ref.(*types.Cell)
	if !ok {
		return newUnifyMismatch(nil, nil, "cannot unify a closed row variable")
	}
	return unifyVarCell(supply, cell, &types.Row{Shape: shape})
}

// unifyRowVsEmpty handles both `RowTy(_, Some(v))`/`EmptyRow` orderings: the
// open row's tail is bound to EmptyRow, and its own known fields must
// already be empty.
func unifyRowVsEmpty(supply *Supply, open *types.RowTy) error {
	if open.Tail == nil {
		if open.Fields.Len() != 0 {
			return newUnifyMismatch(&types.Row{Shape: open}, &types.Row{Shape: types.EmptyRow{}}, "row key sets differ")
		}
		return nil
	}
	if err := unifyVarRefWithRow(supply, open.Tail, types.EmptyRow{}); err != nil {
		return err
	}
	if open.Fields.Len() != 0 {
		return newUnifyMismatch(&types.Row{Shape: open}, &types.Row{Shape: types.EmptyRow{}}, "row key sets differ")
	}
	return nil
}

// unifyCommonFields unifies the field types shared between l and r, in
// label order, leaving fields present in only one side untouched.
func unifyCommonFields(supply *Supply, l, r types.RowFields) error {
	var err error
	l.Range(func(label string, lt types.Type) bool {
		if rt, ok := r.Get(label); ok {
			err = unify(supply, lt, rt)
		}
		return err == nil
	})
	return err
}

// fieldsOnlyIn returns the fields of a that have no entry in b.
func fieldsOnlyIn(a, b types.RowFields) types.RowFields {
	builder := types.NewRowFieldsBuilder()
	a.Range(func(label string, t types.Type) bool {
		if _, ok := b.Get(label); !ok {
			builder.Set(label, t)
		}
		return true
	})
	return builder.Build()
}
