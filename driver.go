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
	"github.com/samber/lo"

	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

// infer assigns a type to term, returning its elaboration (with Builtin and
// polymorphic Var occurrences wrapped in TyApp, and generalized let
// right-hand sides wrapped in TyAbs where applicable).
func infer(ctx *Context, term ir.Term) (types.Type, ir.Term, error) {
	switch t := term.(type) {
	case *ir.Var:
		return inferVar(ctx, t)

	case *ir.Lam:
		return inferLam(ctx, t)

	case *ir.App:
		return inferApp(ctx, t)

	case *ir.Let:
		return inferLet(ctx, t)

	case *ir.Block:
		return inferBlock(ctx, t)

	case *ir.Error:
		tv := ctx.Supply().FreshVar()
		return tv, &ir.Error{Msg: t.Msg, Type: tv}, nil

	case *ir.Builtin:
		return inferBuiltin(ctx, t)

	case *ir.Constant:
		return literalType(t.Value.Kind), t, nil

	case *ir.ObjectLit:
		return inferObjectLit(ctx, t)

	case *ir.ListLit:
		return inferListLit(ctx, t)

	case *ir.DynAccess:
		return nil, nil, newUnsupported("DynAccess")
	}

	return nil, nil, newUnsupported(term.TermName())
}

func inferVar(ctx *Context, v *ir.Var) (types.Type, ir.Term, error) {
	if !v.Local {
		return nil, nil, newUnsupportedTopLevel(v.Name)
	}
	scheme, ok := ctx.Env().Lookup(v.Index)
	if !ok {
		return nil, nil, newUnboundVariable(v.Name, v.Index)
	}
	return instantiate(ctx.Supply(), scheme, &ir.Var{Name: v.Name, Local: true, Index: v.Index})
}

func inferLam(ctx *Context, lam *ir.Lam) (types.Type, ir.Term, error) {
	env := ctx.Env()
	paramTys := lo.Map(lam.Params, func(_ ir.Param, _ int) types.Type {
		return ctx.Supply().FreshVar()
	})
	for i, p := range lam.Params {
		env.PushMono(p.Name, paramTys[i])
	}

	tb, body, err := infer(ctx, lam.Body)
	for range lam.Params {
		env.Pop()
	}
	if err != nil {
		return nil, nil, err
	}

	result := tb
	params := make([]ir.Param, len(lam.Params))
	for i := len(lam.Params) - 1; i >= 0; i-- {
		params[i] = ir.Param{Name: lam.Params[i].Name, Ann: lam.Params[i].Ann, Type: paramTys[i]}
		result = &types.Fun{Dom: paramTys[i], Codom: result}
	}

	return result, &ir.Lam{Name: lam.Name, Params: params, Body: body}, nil
}

// argInference holds one App argument's independently-inferred type/term,
// alongside any error, so the left fold that follows can unify them against
// the callee in argument order without re-running inference.
type argInference struct {
	ty   types.Type
	term ir.Term
	err  error
}

func inferApp(ctx *Context, app *ir.App) (types.Type, ir.Term, error) {
	fnTy, fn, err := infer(ctx, app.Func)
	if err != nil {
		return nil, nil, err
	}

	inferred := lo.Map(app.Args, func(arg ir.Term, _ int) argInference {
		ta, a, err := infer(ctx, arg)
		return argInference{ty: ta, term: a, err: err}
	})

	args := make([]ir.Term, len(app.Args))
	current := fnTy
	for i, r := range inferred {
		if r.err != nil {
			return nil, nil, r.err
		}
		tr := ctx.Supply().FreshVar()
		if err := unify(ctx.Supply(), current, &types.Fun{Dom: r.ty, Codom: tr}); err != nil {
			return nil, nil, err
		}
		args[i] = r.term
		current = tr
	}

	return current, &ir.App{Func: fn, Args: args}, nil
}

func inferLet(ctx *Context, let *ir.Let) (types.Type, ir.Term, error) {
	supply := ctx.Supply()
	supply.EnterLevel()
	trhs, rhs, err := infer(ctx, let.Rhs)
	supply.LeaveLevel()
	if err != nil {
		return nil, nil, err
	}

	scheme, rhs2 := generalize(supply, trhs, rhs)

	ctx.Env().Push(let.Name, scheme)
	tbody, body, err := infer(ctx, let.Body)
	ctx.Env().Pop()
	if err != nil {
		return nil, nil, err
	}

	return tbody, &ir.Let{Name: let.Name, Ann: let.Ann, Rhs: rhs2, Body: body}, nil
}

func inferBlock(ctx *Context, block *ir.Block) (types.Type, ir.Term, error) {
	terms := make([]ir.Term, len(block.Terms))
	var last types.Type
	for i, term := range block.Terms {
		t, elaborated, err := infer(ctx, term)
		if err != nil {
			return nil, nil, err
		}
		terms[i] = elaborated
		last = t
	}
	return last, &ir.Block{Terms: terms}, nil
}

func inferBuiltin(ctx *Context, b *ir.Builtin) (types.Type, ir.Term, error) {
	ty, ok := ctx.builtins[b.Tag]
	if !ok {
		return nil, nil, newUnsupported("builtin " + string(b.Tag))
	}
	body, fresh, err := instantiateImported(ctx.Supply(), ty)
	if err != nil {
		return nil, nil, err
	}
	if len(fresh) == 0 {
		return body, b, nil
	}
	args := make([]types.Type, len(fresh))
	for i, ref := range fresh {
		args[i] = &types.Var{Ref: ref}
	}
	return body, &ir.TyApp{Term: b, TypeArgs: args}, nil
}

// fieldInference is inferObjectLit's per-field counterpart to argInference.
type fieldInference struct {
	label string
	term  ir.Term
	ty    types.Type
	err   error
}

func inferObjectLit(ctx *Context, obj *ir.ObjectLit) (types.Type, ir.Term, error) {
	byLabel := make(map[string]struct{}, len(obj.Fields))
	for _, f := range obj.Fields {
		byLabel[f.Label] = struct{}{}
	}
	if len(lo.Keys(byLabel)) != len(obj.Fields) {
		return nil, nil, newUnsupported("object literal with duplicate field labels")
	}

	inferred := lo.Map(obj.Fields, func(f ir.Field, _ int) fieldInference {
		ft, v, err := infer(ctx, f.Value)
		return fieldInference{label: f.Label, term: v, ty: ft, err: err}
	})

	fields := make([]ir.Field, len(obj.Fields))
	fieldTys := types.NewRowFieldsBuilder()
	for i, r := range inferred {
		if r.err != nil {
			return nil, nil, r.err
		}
		fields[i] = ir.Field{Label: r.label, Value: r.term}
		fieldTys.Set(r.label, r.ty)
	}
	rowTy := &types.Row{Shape: &types.RowTy{Fields: fieldTys.Build()}}
	return rowTy, &ir.ObjectLit{Fields: fields, Type: rowTy}, nil
}

func inferListLit(ctx *Context, lst *ir.ListLit) (types.Type, ir.Term, error) {
	tv := ctx.Supply().FreshVar()
	items := make([]ir.Term, len(lst.Items))
	for i, item := range lst.Items {
		ti, v, err := infer(ctx, item)
		if err != nil {
			return nil, nil, err
		}
		if err := unify(ctx.Supply(), tv, ti); err != nil {
			return nil, nil, err
		}
		items[i] = v
	}
	return &types.List{Elem: tv}, &ir.ListLit{Items: items, ElemType: tv}, nil
}

func literalType(kind ir.LiteralKind) types.Type {
	switch kind {
	case ir.IntLit:
		return &types.Prim{Kind: types.Int}
	case ir.DecimalLit:
		return &types.Prim{Kind: types.Decimal}
	case ir.BoolLit:
		return &types.Prim{Kind: types.Bool}
	case ir.StringLit:
		return &types.Prim{Kind: types.String}
	case ir.UnitLit:
		return &types.Prim{Kind: types.Unit}
	case ir.TimeLit:
		return &types.Prim{Kind: types.Time}
	case ir.GuardLit:
		return &types.Prim{Kind: types.Guard}
	}
	impossible("unknown literal kind")
	return nil
}
