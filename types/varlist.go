package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyVarList = immutable.NewList()

var EmptyVarList = VarList{emptyVarList}

// VarList is an immutable, ordered sequence of VarRef, used both for a
// pre-closure TypeScheme's quantified Cells and a closed Forall's
// NamedDeBruijn binders. Binder order is index order: Vars.Get(0) is
// de Bruijn index 0.
type VarList struct {
	l *immutable.List
}

func NewVarList() VarList { return VarList{emptyVarList} }

func SingletonVarList(v VarRef) VarList {
	return VarList{emptyVarList.Append(v)}
}

func (l VarList) Len() int                     { return l.l.Len() }
func (l VarList) Get(i int) VarRef             { return l.l.Get(i).(VarRef) }
func (l VarList) Slice(start, end int) VarList { return VarList{l.l.Slice(start, end)} }

// Range iterates the list in order. If f returns false, iteration stops.
func (l VarList) Range(f func(int, VarRef) bool) {
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(VarRef)) {
			return
		}
	}
}

func (l VarList) Builder() VarListBuilder {
	imm := l.l
	if imm == nil {
		imm = emptyVarList
	}
	return VarListBuilder{immutable.NewListBuilder(imm)}
}

// VarListBuilder enables in-place appends before finalizing an immutable
// VarList.
type VarListBuilder struct {
	b *immutable.ListBuilder
}

func NewVarListBuilder() VarListBuilder {
	return VarListBuilder{immutable.NewListBuilder(emptyVarList)}
}

func (b VarListBuilder) Len() int           { return b.b.Len() }
func (b VarListBuilder) Append(v VarRef)    { b.b.Append(v) }
func (b VarListBuilder) Set(i int, v VarRef) { b.b.Set(i, v) }
func (b VarListBuilder) Build() VarList     { return VarList{b.b.List()} }
