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

// rowpoly provides level-based Hindley-Milner type inference and
// elaboration for a small, higher-order, let-polymorphic intermediate
// representation with row-polymorphic records and lists.
//
// Given an untyped term, RunInfer produces a principal type scheme and a
// fully elaborated term with explicit type abstractions (TyAbs) at every
// generalization site and explicit type applications (TyApp) at every
// instantiation site, closed under de Bruijn-indexed type variables.
//
// Generalization uses Oleg Kiselyov's level-based scheme rather than the
// classical free-variables-of-the-environment scheme, avoiding a full
// environment traversal at every let binding. Row types follow Daan
// Leijen's scoped-labels formulation, restricted here to single-valued
// fields (no label scoping/shadowing).
//
// Links:
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package rowpoly
