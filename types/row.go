package types

import "fmt"

// RowShape is the base interface for the three states a record/table's row
// can be in: closed and empty, an unresolved variable, or an assembled set
// of fields possibly still open at a tail variable.
type RowShape interface {
	rowNode()
	RowName() string
}

func (EmptyRow) rowNode() {}
func (*RowVar) rowNode()  {}
func (*RowTy) rowNode()   {}

func (EmptyRow) RowName() string { return "EmptyRow" }
func (*RowVar) RowName() string  { return "RowVar" }
func (*RowTy) RowName() string   { return "RowTy" }

// EmptyRow is the closed, fieldless row `<>`.
type EmptyRow struct{}

// RowVar is a row that unification has not yet resolved to either EmptyRow
// or RowTy. Ref is a *Cell before closure, a NamedDeBruijn after.
type RowVar struct {
	Ref VarRef
}

// RowTy is a row with a known (possibly empty) set of fields, optionally
// open at a tail variable. A nil Tail means the row is closed: no further
// fields may be unified in. A non-nil Tail may still resolve (via Deref)
// to EmptyRow or another RowTy; DerefRow does not flatten such a tail, that
// is done by generalization and by de Bruijn closure.
type RowTy struct {
	Fields RowFields
	Tail   VarRef
}

// NonRowLinkError reports that a row variable's cell was linked to a Type
// that is not *Row. The root package's errors.go wraps this in the
// exported RowLink error kind; types itself has no notion of error kinds
// and cannot import the root package to construct one directly.
type NonRowLinkError struct {
	Linked Type
}

func (e *NonRowLinkError) Error() string {
	return fmt.Sprintf("row variable linked to non-row type %s", e.Linked.TypeName())
}

// DerefRow follows a row-variable tail to its underlying shape, mirroring
// Deref for plain type variables, and additionally rejecting a row
// variable that a prior unification resolved to a non-row Type (spec's
// RowLink sanity error, which should never arise from a Cell but is
// checked defensively since Cell.Link is untyped as to shape).
func DerefRow(r RowShape) (RowShape, error) {
	for {
		rv, ok := r.(*RowVar)
		if !ok {
			return r, nil
		}
		c, ok := rv.Ref.(*Cell)
		if !ok || c.State() != StateLink {
			return r, nil
		}
		linked := c.Link()
		row, ok := linked.(*Row)
		if !ok {
			return nil, &NonRowLinkError{Linked: linked}
		}
		r = row.Shape
	}
}
