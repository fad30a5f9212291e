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

// Walk visits t and every subterm reachable from it, in source order.
func Walk(t Term, f func(Term)) {
	switch t := t.(type) {
	case *Var, *Constant, *Builtin:
		f(t)

	case *Lam:
		f(t)
		Walk(t.Body, f)

	case *App:
		f(t)
		Walk(t.Func, f)
		for _, arg := range t.Args {
			Walk(arg, f)
		}

	case *Let:
		f(t)
		Walk(t.Rhs, f)
		Walk(t.Body, f)

	case *Block:
		f(t)
		for _, sub := range t.Terms {
			Walk(sub, f)
		}

	case *Error:
		f(t)

	case *DynAccess:
		f(t)
		Walk(t.Target, f)
		Walk(t.Key, f)

	case *ObjectLit:
		f(t)
		for _, field := range t.Fields {
			Walk(field.Value, f)
		}

	case *ListLit:
		f(t)
		for _, item := range t.Items {
			Walk(item, f)
		}

	case *TyApp:
		f(t)
		Walk(t.Term, f)

	case *TyAbs:
		f(t)
		Walk(t.Body, f)

	case nil:

	default:
		panic("unknown term type: " + t.TermName())
	}
}
