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

// bruijnEnv maps a Bound cell's unique id to the absolute level it was
// assigned at its binder, and the name it carries for display. Cell
// uniques never repeat across a run, so a single flat map safely covers
// every TyAbs encountered without needing explicit scope push/pop.
type bruijnEnv struct {
	level map[int]int
	name  map[int]string
}

func newBruijnEnv() *bruijnEnv {
	return &bruijnEnv{level: make(map[int]int), name: make(map[int]string)}
}

func (e *bruijnEnv) bind(cell *types.Cell, level int) {
	e.level[cell.Unique()] = level
	e.name[cell.Unique()] = cell.Name()
}

// closeScheme finishes elaboration: it closes term (rewriting every bound
// type variable occurrence, wherever nested, to a NamedDeBruijn relative
// index) and, if scheme was actually polymorphic, closes its body into a
// Forall whose Vars mirror the closed term's own top TyAbs — the two were
// built from the identical cells by generalize, so they stay in lockstep.
func closeScheme(scheme types.TypeScheme, term ir.Term) (types.Type, ir.Term, error) {
	env := newBruijnEnv()
	closedTerm, err := closeTerm(env, 0, term)
	if err != nil {
		return nil, nil, err
	}

	n := scheme.Vars.Len()
	closedBody, err := closeType(env, n, scheme.Body)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return closedBody, closedTerm, nil
	}

	tyAbs, ok := closedTerm.(*ir.TyAbs)
	if !ok {
		impossible("generalized scheme closed to a non-TyAbs term")
	}
	b := types.NewVarListBuilder()
	for _, v := range tyAbs.Vars {
		b.Append(v)
	}
	return &types.Forall{Vars: b.Build(), Body: closedBody}, closedTerm, nil
}

func closeTerm(env *bruijnEnv, depth int, term ir.Term) (ir.Term, error) {
	switch t := term.(type) {
	case *ir.Var:
		return t, nil

	case *ir.Lam:
		params := make([]ir.Param, len(t.Params))
		for i, p := range t.Params {
			pt, err := closeType(env, depth, p.Type)
			if err != nil {
				return nil, err
			}
			params[i] = ir.Param{Name: p.Name, Ann: p.Ann, Type: pt}
		}
		body, err := closeTerm(env, depth, t.Body)
		if err != nil {
			return nil, err
		}
		return &ir.Lam{Name: t.Name, Params: params, Body: body}, nil

	case *ir.App:
		fn, err := closeTerm(env, depth, t.Func)
		if err != nil {
			return nil, err
		}
		args := make([]ir.Term, len(t.Args))
		for i, a := range t.Args {
			args[i], err = closeTerm(env, depth, a)
			if err != nil {
				return nil, err
			}
		}
		return &ir.App{Func: fn, Args: args}, nil

	case *ir.Let:
		rhs, err := closeTerm(env, depth, t.Rhs)
		if err != nil {
			return nil, err
		}
		body, err := closeTerm(env, depth, t.Body)
		if err != nil {
			return nil, err
		}
		return &ir.Let{Name: t.Name, Ann: t.Ann, Rhs: rhs, Body: body}, nil

	case *ir.Block:
		terms := make([]ir.Term, len(t.Terms))
		for i, sub := range t.Terms {
			var err error
			terms[i], err = closeTerm(env, depth, sub)
			if err != nil {
				return nil, err
			}
		}
		return &ir.Block{Terms: terms}, nil

	case *ir.Error:
		ty, err := closeType(env, depth, t.Type)
		if err != nil {
			return nil, err
		}
		return &ir.Error{Msg: t.Msg, Type: ty}, nil

	case *ir.Builtin:
		return t, nil

	case *ir.Constant:
		return t, nil

	case *ir.DynAccess:
		target, err := closeTerm(env, depth, t.Target)
		if err != nil {
			return nil, err
		}
		key, err := closeTerm(env, depth, t.Key)
		if err != nil {
			return nil, err
		}
		return &ir.DynAccess{Target: target, Key: key}, nil

	case *ir.ObjectLit:
		fields := make([]ir.Field, len(t.Fields))
		for i, f := range t.Fields {
			v, err := closeTerm(env, depth, f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ir.Field{Label: f.Label, Value: v}
		}
		ty, err := closeType(env, depth, t.Type)
		if err != nil {
			return nil, err
		}
		return &ir.ObjectLit{Fields: fields, Type: ty}, nil

	case *ir.ListLit:
		items := make([]ir.Term, len(t.Items))
		for i, item := range t.Items {
			var err error
			items[i], err = closeTerm(env, depth, item)
			if err != nil {
				return nil, err
			}
		}
		elemTy, err := closeType(env, depth, t.ElemType)
		if err != nil {
			return nil, err
		}
		return &ir.ListLit{Items: items, ElemType: elemTy}, nil

	case *ir.TyApp:
		inner, err := closeTerm(env, depth, t.Term)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(t.TypeArgs))
		for i, a := range t.TypeArgs {
			args[i], err = closeType(env, depth, a)
			if err != nil {
				return nil, err
			}
		}
		return &ir.TyApp{Term: inner, TypeArgs: args}, nil

	case *ir.TyAbs:
		n := len(t.Vars)
		vars := make([]types.VarRef, n)
		for i, vr := range t.Vars {
			cell, ok := vr.(*types.Cell)
			if !ok {
				impossible("TyAbs var already closed before de Bruijn pass")
			}
			env.bind(cell, depth+i)
			vars[i] = types.NamedDeBruijn{Index: i, DisplayName: cell.Name()}
		}
		body, err := closeTerm(env, depth+n, t.Body)
		if err != nil {
			return nil, err
		}
		return &ir.TyAbs{Vars: vars, Body: body}, nil
	}

	return nil, newUnsupported(term.TermName())
}

// closeType rewrites every Var reachable from ty to its closed form: a
// NamedDeBruijn occurrence if its cell is Bound under an enclosing binder,
// or a failure if it is still Unbound (EscapedVariable, meaning
// generalization never ran at the point that should have quantified it).
func closeType(env *bruijnEnv, depth int, ty types.Type) (types.Type, error) {
	if ty == nil {
		return nil, nil
	}

	switch t := ty.(type) {
	case *types.Var:
		resolved := types.Deref(t)
		v, ok := resolved.(*types.Var)
		if !ok {
			return closeType(env, depth, resolved)
		}
		cell, ok := v.Ref.(*types.Cell)
		if !ok {
			return v, nil // already closed
		}
		switch cell.State() {
		case types.StateUnbound:
			return nil, newEscapedVariable(cell)
		case types.StateBound:
			level, ok := env.level[cell.Unique()]
			if !ok {
				impossible("bound type variable with no enclosing binder")
			}
			return &types.Var{Ref: types.NamedDeBruijn{Index: depth - level - 1, DisplayName: env.name[cell.Unique()]}}, nil
		default:
			impossible("unresolved link survived Deref")
		}

	case *types.Prim:
		return t, nil

	case *types.Fun:
		dom, err := closeType(env, depth, t.Dom)
		if err != nil {
			return nil, err
		}
		codom, err := closeType(env, depth, t.Codom)
		if err != nil {
			return nil, err
		}
		return &types.Fun{Dom: dom, Codom: codom}, nil

	case *types.List:
		elem, err := closeType(env, depth, t.Elem)
		if err != nil {
			return nil, err
		}
		return &types.List{Elem: elem}, nil

	case *types.Row:
		shape, err := closeRow(env, depth, t.Shape)
		if err != nil {
			return nil, err
		}
		return &types.Row{Shape: shape}, nil

	case *types.Table:
		shape, err := closeRow(env, depth, t.Shape)
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

func closeRow(env *bruijnEnv, depth int, r types.RowShape) (types.RowShape, error) {
	resolved, err := types.DerefRow(r)
	if err != nil {
		return nil, wrapRowLink(err)
	}

	switch shape := resolved.(type) {
	case types.EmptyRow:
		return shape, nil

	case *types.RowVar:
		cell, ok := shape.Ref.(*types.Cell)
		if !ok {
			return shape, nil // already closed
		}
		switch cell.State() {
		case types.StateUnbound:
			return nil, newEscapedVariable(cell)
		case types.StateBound:
			level, ok := env.level[cell.Unique()]
			if !ok {
				impossible("bound row variable with no enclosing binder")
			}
			idx := depth - level - 1
			return &types.RowVar{Ref: types.NamedDeBruijn{Index: idx, DisplayName: env.name[cell.Unique()]}}, nil
		default:
			impossible("unresolved link survived DerefRow")
		}

	case *types.RowTy:
		builder := types.NewRowFieldsBuilder()
		var ferr error
		shape.Fields.Range(func(label string, ft types.Type) bool {
			nt, e := closeType(env, depth, ft)
			if e != nil {
				ferr = e
				return false
			}
			builder.Set(label, nt)
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		if shape.Tail == nil {
			return &types.RowTy{Fields: builder.Build(), Tail: nil}, nil
		}
		tailShape, err := closeRow(env, depth, &types.RowVar{Ref: shape.Tail})
		if err != nil {
			return nil, err
		}
		switch ts := tailShape.(type) {
		case types.EmptyRow:
			return &types.RowTy{Fields: builder.Build(), Tail: nil}, nil
		case *types.RowVar:
			return &types.RowTy{Fields: builder.Build(), Tail: ts.Ref}, nil
		case *types.RowTy:
			builder.Merge(ts.Fields)
			return &types.RowTy{Fields: builder.Build(), Tail: ts.Tail}, nil
		}
	}

	return nil, newUnsupported("row shape")
}
