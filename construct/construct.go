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

package construct

import (
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

// Types

// TVar wraps an existing VarRef (a *types.Cell or types.NamedDeBruijn) as
// an occurrence.
func TVar(ref types.VarRef) *types.Var {
	return &types.Var{Ref: ref}
}

// TPrim is one of the fixed primitive types.
func TPrim(kind types.PrimKind) *types.Prim {
	return &types.Prim{Kind: kind}
}

func TInt() *types.Prim     { return TPrim(types.Int) }
func TDecimal() *types.Prim { return TPrim(types.Decimal) }
func TBool() *types.Prim    { return TPrim(types.Bool) }
func TString() *types.Prim  { return TPrim(types.String) }
func TUnit() *types.Prim    { return TPrim(types.Unit) }
func TTime() *types.Prim    { return TPrim(types.Time) }
func TGuard() *types.Prim   { return TPrim(types.Guard) }

// TFun is a single-argument function arrow: `dom -> codom`.
func TFun(dom, codom types.Type) *types.Fun {
	return &types.Fun{Dom: dom, Codom: codom}
}

// TFunN right-folds a chain of single-argument arrows over params, e.g.
// TFunN([a, b], c) == a -> b -> c.
func TFunN(params []types.Type, result types.Type) types.Type {
	t := result
	for i := len(params) - 1; i >= 0; i-- {
		t = TFun(params[i], t)
	}
	return t
}

// TList is a homogeneous list type.
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// TRow wraps a row shape as a record type.
func TRow(shape types.RowShape) *types.Row {
	return &types.Row{Shape: shape}
}

// TTable wraps a row shape as a table type.
func TTable(shape types.RowShape) *types.Table {
	return &types.Table{Shape: shape}
}

// TCap is the opaque capability type.
func TCap() *types.Cap { return &types.Cap{} }

// TForall quantifies body over vars, in binder order.
func TForall(vars types.VarList, body types.Type) *types.Forall {
	return &types.Forall{Vars: vars, Body: body}
}

// Row shapes

func REmpty() types.EmptyRow { return types.EmptyRow{} }

func RVar(ref types.VarRef) *types.RowVar {
	return &types.RowVar{Ref: ref}
}

// RClosed builds a closed RowTy (nil tail) from a plain map.
func RClosed(fields map[string]types.Type) *types.RowTy {
	return &types.RowTy{Fields: types.NewFlatRowFields(fields)}
}

// ROpen builds an open RowTy with the given tail variable.
func ROpen(fields map[string]types.Type, tail types.VarRef) *types.RowTy {
	return &types.RowTy{Fields: types.NewFlatRowFields(fields), Tail: tail}
}

// Terms

// Var references a locally-bound name at the given de Bruijn index.
func Var(name string, index int) *ir.Var {
	return &ir.Var{Name: name, Local: true, Index: index}
}

// TopLevelVar references a name outside the locally-bound stack; the
// driver always rejects it with UnsupportedTopLevel.
func TopLevelVar(name string) *ir.Var {
	return &ir.Var{Name: name, Local: false}
}

// Lam builds an n-ary abstraction from bare parameter names; annotations
// are always ignored by inference.
func Lam(names []string, body ir.Term) *ir.Lam {
	params := make([]ir.Param, len(names))
	for i, name := range names {
		params[i] = ir.Param{Name: name}
	}
	return &ir.Lam{Params: params, Body: body}
}

// Lam1 is the common single-parameter case.
func Lam1(name string, body ir.Term) *ir.Lam {
	return Lam([]string{name}, body)
}

// App applies fn to one or more arguments.
func App(fn ir.Term, args ...ir.Term) *ir.App {
	return &ir.App{Func: fn, Args: args}
}

// Let is a single non-recursive binding.
func Let(name string, rhs, body ir.Term) *ir.Let {
	return &ir.Let{Name: name, Rhs: rhs, Body: body}
}

// Block sequences one or more terms; the type is that of the last.
func Block(terms ...ir.Term) *ir.Block {
	return &ir.Block{Terms: terms}
}

// Error is a term that unifies with any expected type at its use site.
func Error(msg string) *ir.Error {
	return &ir.Error{Msg: msg}
}

// Builtin references an externally-supplied operation by tag.
func Builtin(tag ir.BuiltinTag) *ir.Builtin {
	return &ir.Builtin{Tag: tag}
}

// DynAccess is always rejected by the driver with Unsupported.
func DynAccess(target, key ir.Term) *ir.DynAccess {
	return &ir.DynAccess{Target: target, Key: key}
}

// Constant wraps a literal value.
func Constant(kind ir.LiteralKind, syntax string) *ir.Constant {
	return &ir.Constant{Value: ir.Literal{Kind: kind, Syntax: syntax}}
}

func IntConstant(syntax string) *ir.Constant     { return Constant(ir.IntLit, syntax) }
func DecimalConstant(syntax string) *ir.Constant { return Constant(ir.DecimalLit, syntax) }
func BoolConstant(syntax string) *ir.Constant    { return Constant(ir.BoolLit, syntax) }
func StringConstant(syntax string) *ir.Constant  { return Constant(ir.StringLit, syntax) }
func UnitConstant() *ir.Constant                 { return Constant(ir.UnitLit, "()") }

// Field pairs a label with a value term.
func Field(label string, value ir.Term) ir.Field {
	return ir.Field{Label: label, Value: value}
}

// ObjectLit builds a closed-row record literal.
func ObjectLit(fields ...ir.Field) *ir.ObjectLit {
	return &ir.ObjectLit{Fields: fields}
}

// ListLit builds a list literal from zero or more items.
func ListLit(items ...ir.Term) *ir.ListLit {
	return &ir.ListLit{Items: items}
}
