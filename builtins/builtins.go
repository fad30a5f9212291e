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

// Package builtins supplies the default signature table for every
// ir.BuiltinTag the core understands, in the de Bruijn form
// instantiate_imported expects.
package builtins

import (
	"github.com/rowpoly/rowpoly/construct"
	"github.com/rowpoly/rowpoly/ir"
	"github.com/rowpoly/rowpoly/types"
)

func namedVar(index int, name string) *types.Var {
	return construct.TVar(types.NamedDeBruijn{Index: index, DisplayName: name})
}

// mono wraps a signature with no quantifiers.
func mono(t types.Type) types.Type { return t }

func poly1(name string, body func(a types.Type) types.Type) types.Type {
	a := types.NamedDeBruijn{Index: 0, DisplayName: name}
	return construct.TForall(types.SingletonVarList(a), body(namedVar(0, name)))
}

func poly2(name1, name2 string, body func(a, b types.Type) types.Type) types.Type {
	v1 := types.NamedDeBruijn{Index: 0, DisplayName: name1}
	v2 := types.NamedDeBruijn{Index: 1, DisplayName: name2}
	b := types.NewVarListBuilder()
	b.Append(v1)
	b.Append(v2)
	return construct.TForall(b.Build(), body(namedVar(0, name1), namedVar(1, name2)))
}

func intOp2() types.Type {
	return construct.TFunN([]types.Type{construct.TInt(), construct.TInt()}, construct.TInt())
}

func decOp2() types.Type {
	return construct.TFunN([]types.Type{construct.TDecimal(), construct.TDecimal()}, construct.TDecimal())
}

func intCompare() types.Type {
	return construct.TFunN([]types.Type{construct.TInt(), construct.TInt()}, construct.TBool())
}

// Default returns the signature table used by callers that don't need to
// restrict or extend the built-in surface.
func Default() map[ir.BuiltinTag]types.Type {
	return map[ir.BuiltinTag]types.Type{
		ir.Add:    mono(intOp2()),
		ir.Sub:    mono(intOp2()),
		ir.Mul:    mono(intOp2()),
		ir.Div:    mono(intOp2()),
		ir.Mod:    mono(intOp2()),
		ir.Negate: mono(construct.TFun(construct.TInt(), construct.TInt())),
		ir.BitAnd: mono(intOp2()),
		ir.BitOr:  mono(intOp2()),
		ir.BitXor: mono(intOp2()),
		ir.Abs:    mono(construct.TFun(construct.TInt(), construct.TInt())),

		ir.DecimalNeg:   mono(construct.TFun(construct.TDecimal(), construct.TDecimal())),
		ir.DecimalAdd:   mono(decOp2()),
		ir.DecimalSub:   mono(decOp2()),
		ir.DecimalMul:   mono(decOp2()),
		ir.DecimalDiv:   mono(decOp2()),
		ir.DecimalRound: mono(construct.TFun(construct.TDecimal(), construct.TInt())),

		ir.Lt: mono(intCompare()),
		ir.Le: mono(intCompare()),
		ir.Gt: mono(intCompare()),
		ir.Ge: mono(intCompare()),

		ir.Eq: poly1("a", func(a types.Type) types.Type {
			return construct.TFunN([]types.Type{a, a}, construct.TBool())
		}),
		ir.Ne: poly1("a", func(a types.Type) types.Type {
			return construct.TFunN([]types.Type{a, a}, construct.TBool())
		}),

		ir.Not: mono(construct.TFun(construct.TBool(), construct.TBool())),
		ir.And: mono(construct.TFunN([]types.Type{construct.TBool(), construct.TBool()}, construct.TBool())),
		ir.Or:  mono(construct.TFunN([]types.Type{construct.TBool(), construct.TBool()}, construct.TBool())),

		ir.Map: poly2("a", "b", func(a, b types.Type) types.Type {
			return construct.TFunN([]types.Type{
				construct.TFun(a, b),
				construct.TList(a),
			}, construct.TList(b))
		}),
		ir.Fold: poly2("a", "b", func(a, b types.Type) types.Type {
			return construct.TFunN([]types.Type{
				construct.TFunN([]types.Type{b, a}, b),
				b,
				construct.TList(a),
			}, b)
		}),
		ir.Filter: poly1("a", func(a types.Type) types.Type {
			return construct.TFunN([]types.Type{
				construct.TFun(a, construct.TBool()),
				construct.TList(a),
			}, construct.TList(a))
		}),
		ir.If: poly1("a", func(a types.Type) types.Type {
			branch := construct.TFun(construct.TUnit(), a)
			return construct.TFunN([]types.Type{construct.TBool(), branch, branch}, a)
		}),
		ir.Take: poly1("a", func(a types.Type) types.Type {
			return construct.TFunN([]types.Type{construct.TInt(), construct.TList(a)}, construct.TList(a))
		}),
		ir.Drop: poly1("a", func(a types.Type) types.Type {
			return construct.TFunN([]types.Type{construct.TInt(), construct.TList(a)}, construct.TList(a))
		}),
		ir.Length: poly1("a", func(a types.Type) types.Type {
			return construct.TFun(construct.TList(a), construct.TInt())
		}),
		ir.Distinct: mono(construct.TFun(construct.TList(construct.TInt()), construct.TList(construct.TInt()))),
		ir.Enforce:  mono(construct.TFunN([]types.Type{construct.TBool(), construct.TString()}, construct.TUnit())),

		ir.IntToStr:  mono(construct.TFun(construct.TInt(), construct.TString())),
		ir.StrToInt:  mono(construct.TFun(construct.TString(), construct.TInt())),
		ir.Concat:    mono(construct.TFunN([]types.Type{construct.TString(), construct.TString()}, construct.TString())),
		ir.Enumerate: mono(construct.TFun(construct.TInt(), construct.TList(construct.TInt()))),
		ir.EnumerateStep: mono(construct.TFunN(
			[]types.Type{construct.TInt(), construct.TInt()}, construct.TList(construct.TInt()))),
	}
}
