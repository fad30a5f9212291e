package rowpoly

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rowpoly/rowpoly/types"
)

// inferError seals the eight named error kinds so callers can type-switch
// on the concrete type rather than string-matching a message.
type inferError interface {
	error
	inferErr()
}

// UnifyMismatchError reports that two types could not be made structurally
// equal: differing constructors, differing primitives, or disagreeing row
// key sets.
type UnifyMismatchError struct {
	Left, Right types.Type
	cause       error
}

func (e *UnifyMismatchError) inferErr() {}
func (e *UnifyMismatchError) Error() string {
	msg := fmt.Sprintf("cannot unify %s with %s", types.TypeString(e.Left), types.TypeString(e.Right))
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}
func (e *UnifyMismatchError) Cause() error { return e.cause }

func newUnifyMismatch(left, right types.Type, reason string) error {
	var cause error
	if reason != "" {
		cause = errors.New(reason)
	}
	return errors.WithStack(&UnifyMismatchError{Left: left, Right: right, cause: cause})
}

// OccursCheckError reports that a variable would have been written into a
// type containing itself.
type OccursCheckError struct {
	Var  *types.Cell
	Type types.Type
}

func (e *OccursCheckError) inferErr() {}
func (e *OccursCheckError) Error() string {
	return fmt.Sprintf("occurs check failed: %s occurs in %s", e.Var.Name(), types.TypeString(e.Type))
}

func newOccursCheck(v *types.Cell, t types.Type) error {
	return errors.WithStack(&OccursCheckError{Var: v, Type: t})
}

// ImpredicativeError reports a Forall found beneath a type constructor
// during instantiation or closure.
type ImpredicativeError struct {
	Type types.Type
}

func (e *ImpredicativeError) inferErr() {}
func (e *ImpredicativeError) Error() string {
	return "impredicative use of polymorphic type " + types.TypeString(e.Type)
}

func newImpredicative(t types.Type) error {
	return errors.WithStack(&ImpredicativeError{Type: t})
}

// UnboundVariableError reports a local IR variable index outside the
// range of the current type environment.
type UnboundVariableError struct {
	Name  string
	Index int
}

func (e *UnboundVariableError) inferErr() {}
func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q at index %d", e.Name, e.Index)
}

func newUnboundVariable(name string, index int) error {
	return errors.WithStack(&UnboundVariableError{Name: name, Index: index})
}

// UnsupportedTopLevelError reports a non-locally-bound variable reaching
// the core; top-level/module binding resolution is out of scope.
type UnsupportedTopLevelError struct {
	Name string
}

func (e *UnsupportedTopLevelError) inferErr() {}
func (e *UnsupportedTopLevelError) Error() string {
	return "unsupported top-level reference " + e.Name
}

func newUnsupportedTopLevel(name string) error {
	return errors.WithStack(&UnsupportedTopLevelError{Name: name})
}

// EscapedVariableError reports that de Bruijn closure reached an unbound
// cell that was not listed in any enclosing scheme; this indicates
// generalization was not run at the root.
type EscapedVariableError struct {
	Var *types.Cell
}

func (e *EscapedVariableError) inferErr() {}
func (e *EscapedVariableError) Error() string {
	return "type variable " + e.Var.Name() + " escaped its scheme"
}

func newEscapedVariable(v *types.Cell) error {
	return errors.WithStack(&EscapedVariableError{Var: v})
}

// RowLinkError reports a row variable linked to a non-row type, a sanity
// error that should never arise from a well-formed unification.
type RowLinkError struct {
	Linked types.Type
}

func (e *RowLinkError) inferErr() {}
func (e *RowLinkError) Error() string {
	return "row variable linked to non-row type " + types.TypeString(e.Linked)
}

func newRowLink(linked types.Type) error {
	return errors.WithStack(&RowLinkError{Linked: linked})
}

// wrapRowLink converts a types.NonRowLinkError (surfaced across the
// types/rowpoly package boundary as a plain error since types cannot
// depend on rowpoly's error kinds) into the exported RowLinkError.
func wrapRowLink(err error) error {
	if nrl, ok := err.(*types.NonRowLinkError); ok {
		return newRowLink(nrl.Linked)
	}
	return errors.WithStack(err)
}

// UnsupportedError reports a term form the core does not handle, such as
// dynamic field/index access.
type UnsupportedError struct {
	Form string
}

func (e *UnsupportedError) inferErr() {}
func (e *UnsupportedError) Error() string { return "unsupported form: " + e.Form }

func newUnsupported(form string) error {
	return errors.WithStack(&UnsupportedError{Form: form})
}

// impossible panics on an invariant the driver believes can never be
// violated (a Bound cell reached with no enclosing scheme entry during
// closure). It is not one of the eight named error kinds because it
// signals a bug in this package, not an ill-formed input term.
func impossible(detail string) {
	panic("rowpoly: impossible: " + detail)
}
