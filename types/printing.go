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

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type, naming bound
// variables by first occurrence ('a, 'b, ...) and unbound variables by their
// unique ('_N).
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

var _names [128]string
var _unboundNames [128]string

func init() {
	for i := range _names {
		if i >= 26 {
			_names[i] = "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
			continue
		}
		_names[i] = "'" + string(byte(97+i%26))
	}
	for i := range _unboundNames {
		_unboundNames[i] = "'_" + strconv.Itoa(i)
	}
}

func getVarName(i int) string {
	if i >= 0 && i < len(_names) {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(byte(97+i%26))
}

func getUnboundVarName(i int) string {
	if i >= 0 && i < len(_unboundNames) {
		return _unboundNames[i]
	}
	return "'_" + strconv.Itoa(i)
}

func (p *typePrinter) nextName() string {
	return getVarName(len(p.idNames))
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Prim:
		p.sb.WriteString(t.Kind.String())

	case *Var:
		switch ref := t.Ref.(type) {
		case *Cell:
			switch ref.State() {
			case StateLink:
				typeString(p, simple, ref.Link())
			case StateBound:
				if name, ok := p.idNames[ref.Unique()]; ok {
					p.sb.WriteString(name)
					return
				}
				name := p.nextName()
				p.idNames[ref.Unique()] = name
				p.sb.WriteString(name)
			default: // StateUnbound
				if name, ok := p.idNames[ref.Unique()]; ok {
					p.sb.WriteString(name)
					return
				}
				name := getUnboundVarName(ref.Unique())
				p.idNames[ref.Unique()] = name
				p.sb.WriteString(name)
			}
		case NamedDeBruijn:
			p.sb.WriteString(ref.DisplayName)
		}

	case *Fun:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Dom)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Codom)
		if simple {
			p.sb.WriteByte(')')
		}

	case *List:
		p.sb.WriteString("List[")
		typeString(p, false, t.Elem)
		p.sb.WriteByte(']')

	case *Row:
		p.sb.WriteByte('{')
		rowShapeString(p, t.Shape)
		p.sb.WriteByte('}')

	case *Table:
		p.sb.WriteString("Table<")
		rowShapeString(p, t.Shape)
		p.sb.WriteByte('>')

	case *Cap:
		p.sb.WriteString("Cap")

	case *Forall:
		p.sb.WriteString("forall")
		t.Vars.Range(func(_ int, v VarRef) bool {
			p.sb.WriteByte(' ')
			if ndb, ok := v.(NamedDeBruijn); ok {
				p.sb.WriteString(ndb.DisplayName)
			}
			return true
		})
		p.sb.WriteString(". ")
		typeString(p, false, t.Body)
	}
}

func rowShapeString(p *typePrinter, r RowShape) {
	switch r := r.(type) {
	case EmptyRow: // nothing to print

	case *RowVar:
		typeString(p, false, &Var{Ref: r.Ref})

	case *RowTy:
		i := 0
		r.Fields.Range(func(label string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(label)
			p.sb.WriteString(" : ")
			typeString(p, false, ft)
			i++
			return true
		})
		if r.Tail == nil {
			return
		}
		if i > 0 {
			p.sb.WriteString(" | ")
		}
		typeString(p, false, &Var{Ref: r.Tail})
	}
}
