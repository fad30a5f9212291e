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

package ir

import (
	"github.com/rowpoly/rowpoly/types"
)

// Term is the base interface for every node in both the untyped input IR
// and the elaborated output IR. The elaboration-only constructors (TyApp,
// TyAbs) simply never appear in a term handed to the driver.
type Term interface {
	// TermName identifies the syntax-level kind of the term.
	TermName() string
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Lam)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Let)(nil)
	_ Term = (*Block)(nil)
	_ Term = (*Error)(nil)
	_ Term = (*Builtin)(nil)
	_ Term = (*DynAccess)(nil)
	_ Term = (*Constant)(nil)
	_ Term = (*ObjectLit)(nil)
	_ Term = (*ListLit)(nil)
	_ Term = (*TyApp)(nil)
	_ Term = (*TyAbs)(nil)
)

// Var occurrences are resolved by de Bruijn index into the driver's
// locally-bound-variable stack (see env.go). A Var with Local == false
// refers to a name outside that stack (would require top-level binding
// resolution), which this core rejects with UnsupportedTopLevel.
type Var struct {
	Name  string
	Local bool
	Index int
}

func (*Var) TermName() string { return "Var" }

// Param is one parameter of a Lam. Ann is the surface annotation, if any,
// and is always ignored by inference (see driver.go); Type is filled in
// by the driver once the parameter's fresh type variable is known.
type Param struct {
	Name string
	Ann  types.Type
	Type types.Type
}

// Lam is an n-ary function abstraction: `fun x y -> body`, elaborated to a
// right-nested chain of single-argument types.Fun.
type Lam struct {
	Name   string
	Params []Param
	Body   Term
}

func (*Lam) TermName() string { return "Lam" }

// App is application of Func to one or more arguments, left-folded during
// inference.
type App struct {
	Func Term
	Args []Term
}

func (*App) TermName() string { return "App" }

// Let is a non-recursive single binding: `let name = rhs in body`. Ann is
// the surface annotation on name, always ignored (rhs's inferred type is
// used unconditionally).
type Let struct {
	Name string
	Ann  types.Type
	Rhs  Term
	Body Term
}

func (*Let) TermName() string { return "Let" }

// Block sequences one or more terms; its type is the type of the last.
type Block struct {
	Terms []Term
}

func (*Block) TermName() string { return "Block" }

// Error is a term that always fails to produce a value; it unifies with
// any type at its use site. Type is nil until inference assigns the fresh
// variable it was unified against.
type Error struct {
	Msg  string
	Type types.Type
}

func (*Error) TermName() string { return "Error" }

// Builtin references an externally-supplied operation by tag; its
// signature comes from the builtins mapping passed to RunInfer, not from
// this term.
type Builtin struct {
	Tag BuiltinTag
}

func (*Builtin) TermName() string { return "Builtin" }

// DynAccess represents a dynamic (non-statically-resolvable) field or
// index access. This core does not support it; the driver always fails
// with Unsupported when it encounters one.
type DynAccess struct {
	Target Term
	Key    Term
}

func (*DynAccess) TermName() string { return "DynAccess" }

// Constant wraps a semi-opaque literal value.
type Constant struct {
	Value Literal
}

func (*Constant) TermName() string { return "Constant" }

// Field pairs a record label with its value term, in source order.
type Field struct {
	Label string
	Value Term
}

// ObjectLit builds a closed record: `{name: "a", age: 3}`. Type is filled
// in by the driver as a *types.Row over a closed types.RowTy.
type ObjectLit struct {
	Fields []Field
	Type   types.Type
}

func (*ObjectLit) TermName() string { return "ObjectLit" }

// ListLit builds a homogeneous list. ElemType is the fresh variable
// allocated for the element type, unified against every item; it is left
// free (never defaulted) so an empty list can still be generalized.
type ListLit struct {
	Items    []Term
	ElemType types.Type
}

func (*ListLit) TermName() string { return "ListLit" }

// TyApp is an elaboration-only node marking instantiation of a
// polymorphic value: the type arguments supplied at this use site, in
// quantifier order.
type TyApp struct {
	Term     Term
	TypeArgs []types.Type
}

func (*TyApp) TermName() string { return "TyApp" }

// TyAbs is an elaboration-only node marking generalization: Vars holds the
// variables quantified over Body, in first-occurrence order. Pre-closure,
// each entry is a *types.Cell in the Bound state; de Bruijn closure builds
// a new TyAbs whose entries are types.NamedDeBruijn.
type TyAbs struct {
	Vars []types.VarRef
	Body Term
}

func (*TyAbs) TermName() string { return "TyAbs" }
