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

// RunInfer infers term's type against a fresh Context seeded with
// builtins, generalizes the result as if term were the right-hand side of
// a top-level let, and closes the elaborated type and term to their de
// Bruijn form. The returned term always has fully-resolved types: no
// reachable Type still holds a *types.Cell.
func RunInfer(builtins map[ir.BuiltinTag]types.Type, term ir.Term) (types.Type, ir.Term, error) {
	ctx := NewContext()
	ctx.SetBuiltins(builtins)
	return Infer(ctx, term)
}

// Infer runs inference against a caller-supplied, possibly reused Context.
// Reusing a Context across independent top-level terms keeps their fresh
// type variables from colliding, at the cost of the caller remembering to
// call Context.Reset between unrelated runs.
func Infer(ctx *Context, term ir.Term) (types.Type, ir.Term, error) {
	supply := ctx.Supply()

	supply.EnterLevel()
	ty, elaborated, err := infer(ctx, term)
	supply.LeaveLevel()
	if err != nil {
		return nil, nil, err
	}

	scheme, elaborated := generalize(supply, ty, elaborated)

	return closeScheme(scheme, elaborated)
}
