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

// instantiate replaces scheme's quantified variables with fresh cells at
// the supply's current level, and wraps term in a TyApp recording the
// chosen type arguments when the scheme was actually polymorphic.
func instantiate(supply *Supply, scheme types.TypeScheme, term ir.Term) (types.Type, ir.Term, error) {
	n := scheme.Vars.Len()
	if n == 0 {
		return scheme.Body, term, nil
	}

	subst := make(map[int]*types.Cell, n)
	args := make([]types.Type, 0, n)
	scheme.Vars.Range(func(_ int, vr types.VarRef) bool {
		cell, ok := vr.(*types.Cell)
		if !ok {
			return true
		}
		fresh := supply.FreshCell()
		subst[cell.Unique()] = fresh
		args = append(args, &types.Var{Ref: fresh})
		return true
	})

	body, err := substBoundType(subst, scheme.Body)
	if err != nil {
		return nil, nil, err
	}

	return body, &ir.TyApp{Term: term, TypeArgs: args}, nil
}

// substBoundType copies ty, replacing every Bound cell present in subst
// with a Var over its fresh replacement. Unbound and Link occurrences are
// left as-is: they belong to types outside this scheme and are shared by
// reference, matching every other type in the arena.
func substBoundType(subst map[int]*types.Cell, ty types.Type) (types.Type, error) {
	switch t := ty.(type) {
	case *types.Var:
		cell, ok := t.Ref.(*types.Cell)
		if !ok || cell.State() != types.StateBound {
			return t, nil
		}
		if fresh, ok := subst[cell.Unique()]; ok {
			return &types.Var{Ref: fresh}, nil
		}
		return t, nil

	case *types.Prim:
		return t, nil

	case *types.Fun:
		dom, err := substBoundType(subst, t.Dom)
		if err != nil {
			return nil, err
		}
		codom, err := substBoundType(subst, t.Codom)
		if err != nil {
			return nil, err
		}
		return &types.Fun{Dom: dom, Codom: codom}, nil

	case *types.List:
		elem, err := substBoundType(subst, t.Elem)
		if err != nil {
			return nil, err
		}
		return &types.List{Elem: elem}, nil

	case *types.Row:
		shape, err := substBoundRow(subst, t.Shape)
		if err != nil {
			return nil, err
		}
		return &types.Row{Shape: shape}, nil

	case *types.Table:
		shape, err := substBoundRow(subst, t.Shape)
		if err != nil {
			return nil, err
		}
		return &types.Table{Shape: shape}, nil

	case *types.Cap:
		return t, nil

	case *types.Forall:
		return nil, newImpredicative(t)
	}

	return ty, nil
}

func substBoundRow(subst map[int]*types.Cell, r types.RowShape) (types.RowShape, error) {
	switch r := r.(type) {
	case types.EmptyRow:
		return r, nil

	case *types.RowVar:
		return &types.RowVar{Ref: substBoundVarRef(subst, r.Ref)}, nil

	case *types.RowTy:
		builder := types.NewRowFieldsBuilder()
		var err error
		r.Fields.Range(func(label string, ft types.Type) bool {
			var nt types.Type
			nt, err = substBoundType(subst, ft)
			if err != nil {
				return false
			}
			builder.Set(label, nt)
			return true
		})
		if err != nil {
			return nil, err
		}
		tail := r.Tail
		if tail != nil {
			tail = substBoundVarRef(subst, tail)
		}
		return &types.RowTy{Fields: builder.Build(), Tail: tail}, nil
	}
	return r, nil
}

func substBoundVarRef(subst map[int]*types.Cell, ref types.VarRef) types.VarRef {
	cell, ok := ref.(*types.Cell)
	if !ok || cell.State() != types.StateBound {
		return ref
	}
	if fresh, ok := subst[cell.Unique()]; ok {
		return fresh
	}
	return ref
}

// instantiateImported replaces a builtin signature's de Bruijn quantifiers
// with fresh cells at the supply's current level, returning the
// instantiated body and the fresh variables in quantifier order. A
// non-Forall signature is returned unchanged with no fresh variables.
func instantiateImported(supply *Supply, ty types.Type) (types.Type, []types.VarRef, error) {
	forall, ok := ty.(*types.Forall)
	if !ok {
		return ty, nil, nil
	}

	n := forall.Vars.Len()
	subst := make(map[int]*types.Cell, n)
	fresh := make([]types.VarRef, 0, n)
	forall.Vars.Range(func(i int, vr types.VarRef) bool {
		nd, ok := vr.(types.NamedDeBruijn)
		if !ok {
			return true
		}
		cell := supply.FreshCell()
		subst[nd.Index] = cell
		fresh = append(fresh, cell)
		return true
	})

	body, err := substImportedType(subst, forall.Body)
	if err != nil {
		return nil, nil, err
	}
	return body, fresh, nil
}

func substImportedType(subst map[int]*types.Cell, ty types.Type) (types.Type, error) {
	switch t := ty.(type) {
	case *types.Var:
		nd, ok := t.Ref.(types.NamedDeBruijn)
		if !ok {
			return t, nil
		}
		if fresh, ok := subst[nd.Index]; ok {
			return &types.Var{Ref: fresh}, nil
		}
		return t, nil

	case *types.Prim:
		return t, nil

	case *types.Fun:
		dom, err := substImportedType(subst, t.Dom)
		if err != nil {
			return nil, err
		}
		codom, err := substImportedType(subst, t.Codom)
		if err != nil {
			return nil, err
		}
		return &types.Fun{Dom: dom, Codom: codom}, nil

	case *types.List:
		elem, err := substImportedType(subst, t.Elem)
		if err != nil {
			return nil, err
		}
		return &types.List{Elem: elem}, nil

	case *types.Row:
		shape, err := substImportedRow(subst, t.Shape)
		if err != nil {
			return nil, err
		}
		return &types.Row{Shape: shape}, nil

	case *types.Table:
		shape, err := substImportedRow(subst, t.Shape)
		if err != nil {
			return nil, err
		}
		return &types.Table{Shape: shape}, nil

	case *types.Cap:
		return t, nil

	case *types.Forall:
		return nil, newImpredicative(t)
	}

	return ty, nil
}

func substImportedRow(subst map[int]*types.Cell, r types.RowShape) (types.RowShape, error) {
	switch r := r.(type) {
	case types.EmptyRow:
		return r, nil

	case *types.RowVar:
		return &types.RowVar{Ref: substImportedVarRef(subst, r.Ref)}, nil

	case *types.RowTy:
		builder := types.NewRowFieldsBuilder()
		var err error
		r.Fields.Range(func(label string, ft types.Type) bool {
			var nt types.Type
			nt, err = substImportedType(subst, ft)
			if err != nil {
				return false
			}
			builder.Set(label, nt)
			return true
		})
		if err != nil {
			return nil, err
		}
		tail := r.Tail
		if tail != nil {
			tail = substImportedVarRef(subst, tail)
		}
		return &types.RowTy{Fields: builder.Build(), Tail: tail}, nil
	}
	return r, nil
}

func substImportedVarRef(subst map[int]*types.Cell, ref types.VarRef) types.VarRef {
	nd, ok := ref.(types.NamedDeBruijn)
	if !ok {
		return ref
	}
	if fresh, ok := subst[nd.Index]; ok {
		return fresh
	}
	return ref
}
