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

// Copy deep-copies t. Embedded types.Type values are shared, not copied:
// once a term is elaborated its types are immutable from the copier's
// point of view.
func Copy(t Term) Term {
	switch t := t.(type) {
	case *Var:
		cp := *t
		return &cp

	case *Constant:
		cp := *t
		return &cp

	case *Builtin:
		cp := *t
		return &cp

	case *Error:
		cp := *t
		return &cp

	case *Lam:
		params := make([]Param, len(t.Params))
		copy(params, t.Params)
		return &Lam{Name: t.Name, Params: params, Body: Copy(t.Body)}

	case *App:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Copy(arg)
		}
		return &App{Func: Copy(t.Func), Args: args}

	case *Let:
		return &Let{Name: t.Name, Ann: t.Ann, Rhs: Copy(t.Rhs), Body: Copy(t.Body)}

	case *Block:
		terms := make([]Term, len(t.Terms))
		for i, sub := range t.Terms {
			terms[i] = Copy(sub)
		}
		return &Block{Terms: terms}

	case *DynAccess:
		return &DynAccess{Target: Copy(t.Target), Key: Copy(t.Key)}

	case *ObjectLit:
		fields := make([]Field, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = Field{Label: field.Label, Value: Copy(field.Value)}
		}
		return &ObjectLit{Fields: fields, Type: t.Type}

	case *ListLit:
		items := make([]Term, len(t.Items))
		for i, item := range t.Items {
			items[i] = Copy(item)
		}
		return &ListLit{Items: items, ElemType: t.ElemType}

	case *TyApp:
		return &TyApp{Term: Copy(t.Term), TypeArgs: t.TypeArgs}

	case *TyAbs:
		return &TyAbs{Vars: t.Vars, Body: Copy(t.Body)}
	}
	if t == nil {
		return nil
	}
	panic("unknown term type: " + t.TermName())
}
