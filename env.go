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
	"github.com/rowpoly/rowpoly/types"
)

// TypeEnv is a de-Bruijn-indexed stack mapping locally-bound IR variables
// to their type schemes. Index 0 refers to the most recently pushed
// binding, matching the driver's Var(local, idx) convention.
//
// A TypeEnv is not safe for concurrent use; each inference run owns one.
type TypeEnv struct {
	schemes []types.TypeScheme
	names   []string
}

// NewTypeEnv returns an empty environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{}
}

// Push binds name to scheme at index 0, shifting every existing index up
// by one.
func (e *TypeEnv) Push(name string, scheme types.TypeScheme) {
	e.schemes = append(e.schemes, scheme)
	e.names = append(e.names, name)
}

// PushMono is a convenience for pushing a monomorphic (unquantified)
// binding, used for Lam parameters.
func (e *TypeEnv) PushMono(name string, t types.Type) {
	e.Push(name, types.Monomorphic(t))
}

// Pop removes the most recently pushed binding. Callers must pop exactly
// what they pushed once a binder's scope ends, since the driver reuses
// one TypeEnv across the whole traversal.
func (e *TypeEnv) Pop() {
	n := len(e.schemes)
	e.schemes = e.schemes[:n-1]
	e.names = e.names[:n-1]
}

// Len returns the number of bindings currently in scope.
func (e *TypeEnv) Len() int { return len(e.schemes) }

// Lookup returns the scheme bound at de Bruijn index idx, and whether idx
// was in range.
func (e *TypeEnv) Lookup(idx int) (types.TypeScheme, bool) {
	if idx < 0 || idx >= len(e.schemes) {
		return types.TypeScheme{}, false
	}
	return e.schemes[len(e.schemes)-1-idx], true
}

// NameAt returns the display name bound at de Bruijn index idx, for
// diagnostics.
func (e *TypeEnv) NameAt(idx int) string {
	if idx < 0 || idx >= len(e.names) {
		return "?"
	}
	return e.names[len(e.names)-1-idx]
}
