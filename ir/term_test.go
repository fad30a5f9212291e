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

import "testing"

func sampleTerm() Term {
	return &Let{
		Name: "id",
		Rhs:  &Lam{Params: []Param{{Name: "x"}}, Body: &Var{Name: "x", Local: true, Index: 0}},
		Body: &App{
			Func: &Var{Name: "id", Local: true, Index: 0},
			Args: []Term{&Constant{Value: Literal{Kind: IntLit, Syntax: "1"}}},
		},
	}
}

func TestWalkVisitsEverySubterm(t *testing.T) {
	var names []string
	Walk(sampleTerm(), func(term Term) {
		names = append(names, term.TermName())
	})

	want := []string{"Let", "Lam", "Var", "App", "Var", "Constant"}
	if len(names) != len(want) {
		t.Fatalf("got %d visited terms %v, want %d %v", len(names), names, len(want), want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("visit order mismatch at %d: got %s, want %s", i, names[i], want[i])
		}
	}
}

func TestWalkOnNilIsANoOp(t *testing.T) {
	calls := 0
	Walk(nil, func(Term) { calls++ })
	if calls != 0 {
		t.Fatalf("expected Walk(nil, ...) not to invoke f, got %d calls", calls)
	}
}

func TestStringRendersSurfaceSyntax(t *testing.T) {
	got := String(sampleTerm())
	want := "let id = fun x -> x in id(1)"
	if got != want {
		t.Fatalf("String(sampleTerm()) = %q, want %q", got, want)
	}
}

func TestCopyProducesAnIndependentTree(t *testing.T) {
	original := sampleTerm().(*Let)
	cp := Copy(original).(*Let)

	if cp == original {
		t.Fatalf("Copy returned the same *Let, want a distinct pointer")
	}
	originalLam := original.Rhs.(*Lam)
	copiedLam := cp.Rhs.(*Lam)
	if copiedLam == originalLam {
		t.Fatalf("Copy shared the nested *Lam pointer, want a fresh copy")
	}
	if String(cp) != String(original) {
		t.Fatalf("Copy(original) prints as %q, want %q", String(cp), String(original))
	}

	copiedLam.Params[0].Name = "y"
	if original.Rhs.(*Lam).Params[0].Name != "x" {
		t.Fatalf("mutating the copy's params leaked back into the original")
	}
}
