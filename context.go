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

// Context is a reusable, resettable driver for a single inference run.
// Reusing a Context across runs (via Reset) lets a caller keep numbering
// unique ids from where the previous run left off; Reset starts a new,
// empty environment stack.
//
// A Context is not safe for concurrent use; independent runs must use
// independent Contexts.
type Context struct {
	supply   *Supply
	env      *TypeEnv
	builtins map[ir.BuiltinTag]types.Type
}

// NewContext creates a Context with a fresh Supply.
func NewContext() *Context {
	return &Context{supply: NewSupply(), env: NewTypeEnv()}
}

// Reset clears the environment stack and rewinds the level register to
// baseLevel, while preserving the unique counter so a subsequent run
// never reallocates a unique already handed out. The builtin table
// survives a Reset: callers that want to run several independent terms
// against the same signatures only need to set it once.
func (c *Context) Reset() {
	c.env = NewTypeEnv()
	c.supply = NewSupplyFrom(c.supply.NextUnique())
}

// SetBuiltins installs the signature table consulted by inferBuiltin. It
// must be called before Infer if term can reach an *ir.Builtin.
func (c *Context) SetBuiltins(builtins map[ir.BuiltinTag]types.Type) {
	c.builtins = builtins
}

// Supply exposes the context's unique/level state, mainly for tests.
func (c *Context) Supply() *Supply { return c.supply }

// Env exposes the context's environment stack, mainly for tests.
func (c *Context) Env() *TypeEnv { return c.env }
