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
	"github.com/benbjohnson/immutable"
)

var emptyFields = immutable.NewSortedMap(nil)

var EmptyRowFields = RowFields{emptyFields}

// RowFields is an immutable mapping from field label to Type, iterated in
// label order. Every label maps to exactly one Type; unlike the scoped-label
// row encodings some record systems use, a label cannot appear twice.
type RowFields struct {
	m *immutable.SortedMap
}

func NewRowFields() RowFields { return RowFields{emptyFields} }

// SingletonRowFields creates a RowFields with a single label.
func SingletonRowFields(label string, t Type) RowFields {
	return RowFields{emptyFields.Set(label, t)}
}

// NewFlatRowFields builds a RowFields from a plain Go map. Iteration order
// on the result is by label, not insertion order.
func NewFlatRowFields(m map[string]Type) RowFields {
	b := NewRowFieldsBuilder()
	for label, t := range m {
		b.Set(label, t)
	}
	return b.Build()
}

// Len returns the number of fields.
func (f RowFields) Len() int { return f.m.Len() }

// First returns the lexicographically-first (label, Type), or ("", nil) if
// empty.
func (f RowFields) First() (string, Type) {
	if f.Len() == 0 {
		return "", nil
	}
	k, v := f.m.Iterator().Next()
	return k.(string), v.(Type)
}

// Get looks up a field by label.
func (f RowFields) Get(label string) (Type, bool) {
	v, ok := f.m.Get(label)
	if !ok {
		return nil, false
	}
	return v.(Type), true
}

// Range iterates the fields in label order. If f returns false, iteration
// stops.
func (f RowFields) Range(fn func(string, Type) bool) {
	iter := f.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !fn(k.(string), v.(Type)) {
			return
		}
	}
}

// Iterator returns a sequential-order iterator over the fields.
func (f RowFields) Iterator() RowFieldsIterator {
	return RowFieldsIterator{f.m.Iterator()}
}

// Builder returns a builder seeded with this map's entries, without
// mutating it.
func (f RowFields) Builder() RowFieldsBuilder {
	imm := f.m
	if imm == nil {
		imm = emptyFields
	}
	return RowFieldsBuilder{immutable.NewSortedMapBuilder(imm)}
}

// RowFieldsBuilder enables in-place updates before finalizing an immutable
// RowFields.
type RowFieldsBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewRowFieldsBuilder() RowFieldsBuilder {
	return RowFieldsBuilder{immutable.NewSortedMapBuilder(emptyFields)}
}

func (b *RowFieldsBuilder) EnsureInitialized() {
	if b.b != nil {
		return
	}
	b.b = immutable.NewSortedMapBuilder(emptyFields)
}

func (b RowFieldsBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Set assigns a label's Type, overwriting any existing entry for that
// label — row fields have no scoping, so unlike the teacher's TypeMap this
// never appends to a per-label list.
func (b RowFieldsBuilder) Set(label string, t Type) RowFieldsBuilder {
	b.b.Set(label, t)
	return b
}

func (b RowFieldsBuilder) Delete(label string) RowFieldsBuilder {
	b.b.Delete(label)
	return b
}

func (b RowFieldsBuilder) Build() RowFields {
	if b.b == nil {
		return EmptyRowFields
	}
	return RowFields{b.b.Map()}
}

// Merge overwrites entries from other into the builder. Used to combine a
// RowTy's known fields with a linked tail's fields during flattening.
func (a RowFieldsBuilder) Merge(other RowFields) RowFieldsBuilder {
	other.Range(func(label string, t Type) bool {
		a.Set(label, t)
		return true
	})
	return a
}

// RowFieldsIterator reads (label, Type) entries in label order.
type RowFieldsIterator struct {
	i *immutable.SortedMapIterator
}

func (i RowFieldsIterator) Done() bool { return i.i.Done() }

func (i RowFieldsIterator) Next() (string, Type) {
	if i.Done() {
		return "", nil
	}
	k, v := i.i.Next()
	return k.(string), v.(Type)
}

func (i RowFieldsIterator) Peek() (string, Type) {
	if i.Done() {
		return "", nil
	}
	k, v := i.i.Next()
	i.i.Prev()
	return k.(string), v.(Type)
}
