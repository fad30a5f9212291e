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

// Type is the base interface for every constructor in the type language:
// Var, Prim, Fun, List, Row, Table, Cap, and Forall.
type Type interface {
	typeNode()
	// TypeName returns the constructor's tag, used in error messages and
	// by the pretty-printer.
	TypeName() string
}

func (*Var) typeNode()    {}
func (*Prim) typeNode()   {}
func (*Fun) typeNode()    {}
func (*List) typeNode()   {}
func (*Row) typeNode()    {}
func (*Table) typeNode()  {}
func (*Cap) typeNode()    {}
func (*Forall) typeNode() {}

func (*Var) TypeName() string    { return "Var" }
func (*Prim) TypeName() string   { return "Prim" }
func (*Fun) TypeName() string    { return "Fun" }
func (*List) TypeName() string   { return "List" }
func (*Row) TypeName() string    { return "Row" }
func (*Table) TypeName() string  { return "Table" }
func (*Cap) TypeName() string    { return "Cap" }
func (*Forall) TypeName() string { return "Forall" }

// PrimKind enumerates the primitive base types.
type PrimKind uint8

const (
	Int PrimKind = iota
	Decimal
	Bool
	String
	Unit
	Time
	Guard
)

func (k PrimKind) String() string {
	switch k {
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Unit:
		return "unit"
	case Time:
		return "time"
	case Guard:
		return "guard"
	default:
		return "Prim?"
	}
}

// Var is an occurrence of a type variable: either a mutable inference-time
// Cell (pre-closure) or an immutable NamedDeBruijn index (post-closure or
// as supplied by a de-Bruijn-encoded builtin signature).
type Var struct {
	Ref VarRef
}

// Prim is one of the fixed base types.
type Prim struct {
	Kind PrimKind
}

// Fun is a right-associative function arrow: Dom -> Codom.
type Fun struct {
	Dom, Codom Type
}

// List is a homogeneous list type.
type List struct {
	Elem Type
}

// Row is a record type over the given row shape.
type Row struct {
	Shape RowShape
}

// Table is a tabular type sharing row structure with Row; it is
// distinguished at the type level for a downstream codegen that wants to
// tell a homogeneous collection-of-records apart from a plain record.
type Table struct {
	Shape RowShape
}

// Cap is an opaque capability type with no internal structure.
type Cap struct{}

// Forall is a universally-quantified type. It only ever appears at a
// scheme boundary: as the outermost shape of a closed TypeScheme, or as
// the outermost shape of a supplied builtin signature. A Forall beneath
// any other constructor is impredicative and rejected (ImpredicativeError).
type Forall struct {
	// Vars holds NamedDeBruijn variables, in binder order (index 0 first).
	Vars VarList
	Body Type
}
