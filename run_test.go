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
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/builtins"
	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

func run(t *testing.T, term ir.Term) (types.Type, ir.Term) {
	t.Helper()
	ty, elaborated, err := RunInfer(builtins.Default(), term)
	require.NoError(t, err)
	return ty, elaborated
}

// requireEqualTypeString asserts that want and got print identically,
// logging a field-by-field diff of the two type graphs via kr/pretty
// before failing, since types.TypeString alone doesn't say which cell or
// field diverged.
func requireEqualTypeString(t *testing.T, want, got types.Type) {
	t.Helper()
	if types.TypeString(want) != types.TypeString(got) {
		pretty.Ldiff(t, want, got)
		t.FailNow()
	}
}

func TestPolymorphicIdentity(t *testing.T) {
	// let id = fun x -> x in id
	term := construct.Let("id", construct.Lam1("x", construct.Var("x", 0)), construct.Var("id", 0))

	ty, elaborated := run(t, term)

	forall, ok := ty.(*types.Forall)
	require.True(t, ok, "identity should generalize to a polymorphic scheme")
	assert.Equal(t, 1, forall.Vars.Len())

	fn, ok := forall.Body.(*types.Fun)
	require.True(t, ok)
	requireEqualTypeString(t, fn.Dom, fn.Codom)

	top, ok := elaborated.(*ir.TyAbs)
	require.True(t, ok, "the polymorphic result should be wrapped in a top-level TyAbs")
	let, ok := top.Body.(*ir.Let)
	require.True(t, ok)
	_, ok = let.Rhs.(*ir.TyAbs)
	assert.True(t, ok, "id's right-hand side should be generalized into a TyAbs")
}

func TestLetPolymorphismAppliesAtTwoTypes(t *testing.T) {
	// let id = fun x -> x in (id 1, id "s") modeled as a block of two calls
	idBody := construct.Lam1("x", construct.Var("x", 0))
	body := construct.Block(
		construct.App(construct.Var("id", 0), construct.IntConstant("1")),
		construct.App(construct.Var("id", 0), construct.StringConstant("s")),
	)
	term := construct.Let("id", idBody, body)

	ty, _ := run(t, term)

	prim, ok := ty.(*types.Prim)
	require.True(t, ok)
	assert.Equal(t, types.String, prim.Kind)
}

func TestClosedRowObjectLiteral(t *testing.T) {
	obj := construct.ObjectLit(
		construct.Field("name", construct.StringConstant("a")),
		construct.Field("age", construct.IntConstant("3")),
	)

	ty, elaborated := run(t, obj)

	row, ok := ty.(*types.Row)
	require.True(t, ok)
	rt, ok := row.Shape.(*types.RowTy)
	require.True(t, ok)
	assert.Nil(t, rt.Tail, "object literals are closed rows")
	assert.Equal(t, 2, rt.Fields.Len())

	lit, ok := elaborated.(*ir.ObjectLit)
	require.True(t, ok)
	requireEqualTypeString(t, ty, lit.Type)
}

func TestOccursCheckFails(t *testing.T) {
	// let f = fun x -> x x in ...
	xx := construct.App(construct.Var("x", 0), construct.Var("x", 0))
	term := construct.Let("f", construct.Lam1("x", xx), construct.Var("f", 0))

	_, _, err := RunInfer(builtins.Default(), term)
	require.Error(t, err)
	var occ *OccursCheckError
	assert.ErrorAs(t, err, &occ)
}

func TestEmptyListGeneralizes(t *testing.T) {
	term := construct.Let("empty", construct.ListLit(), construct.Var("empty", 0))

	ty, _ := run(t, term)

	forall, ok := ty.(*types.Forall)
	require.True(t, ok, "an empty list's element type stays free to generalize")
	assert.Equal(t, 1, forall.Vars.Len())
	_, ok = forall.Body.(*types.List)
	assert.True(t, ok)
}

func TestUnboundVariableFails(t *testing.T) {
	term := construct.Var("x", 0)
	_, _, err := RunInfer(builtins.Default(), term)
	require.Error(t, err)
	var uv *UnboundVariableError
	assert.ErrorAs(t, err, &uv)
}

func TestUnsupportedTopLevelFails(t *testing.T) {
	term := construct.TopLevelVar("printf")
	_, _, err := RunInfer(builtins.Default(), term)
	require.Error(t, err)
	var ut *UnsupportedTopLevelError
	assert.ErrorAs(t, err, &ut)
}

func TestDynAccessUnsupported(t *testing.T) {
	term := construct.DynAccess(construct.Var("x", 0), construct.StringConstant("k"))
	_, _, err := RunInfer(builtins.Default(), construct.Lam1("x", term))
	require.Error(t, err)
	var us *UnsupportedError
	assert.ErrorAs(t, err, &us)
}

func TestBuiltinInstantiationWrapsTyApp(t *testing.T) {
	// map applied nowhere: reference the builtin bare, should elaborate to a
	// TyApp with two fresh type arguments (a, b), wrapped in the TyAbs that
	// generalizing the polymorphic top-level result adds.
	_, elaborated := run(t, construct.Builtin(ir.Map))

	top, ok := elaborated.(*ir.TyAbs)
	require.True(t, ok)
	app, ok := top.Body.(*ir.TyApp)
	require.True(t, ok)
	assert.Len(t, app.TypeArgs, 2)
	_, ok = app.Term.(*ir.Builtin)
	assert.True(t, ok)
}

func TestRowUnificationOnFieldAccessStyleBuiltin(t *testing.T) {
	// Applying `if` to a closed-row object at both branches unifies their
	// row types; mismatched fields should fail UnifyMismatch. Branches are
	// thunked, matching if's Bool -> (Unit -> a) -> (Unit -> a) -> a shape.
	objA := construct.Lam1("_", construct.ObjectLit(construct.Field("x", construct.IntConstant("1"))))
	objB := construct.Lam1("_", construct.ObjectLit(construct.Field("y", construct.IntConstant("1"))))
	term := construct.App(construct.Builtin(ir.If), construct.BoolConstant("true"), objA, objB)

	_, _, err := RunInfer(builtins.Default(), term)
	require.Error(t, err)
	var mm *UnifyMismatchError
	assert.ErrorAs(t, err, &mm)
}
