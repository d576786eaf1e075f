package gramsyntax

import (
	"fmt"

	"src.gramsh.sh/pkg/diag"
)

// Error reports a problem found while parsing one grammar source line: a
// LexError, StructureError or SemanticError per spec.md §7. Kind
// distinguishes them for callers that want to react differently (e.g. a
// tool that treats SemanticError as recoverable).
type Error struct {
	Kind string
	Diag *diag.Error
}

func (e *Error) Error() string            { return e.Diag.Error() }
func (e *Error) AsDiagError() *diag.Error { return e.Diag }
func (e *Error) Show(indent string) string { return e.Diag.Show(indent) }

func newError(name, src string, r diag.Ranging, format string, args ...interface{}) *Error {
	message := fmt.Sprintf(format, args...)
	return &Error{Kind: "StructureError", Diag: diag.NewError("syntax error", message, name, src, r)}
}

func newErrorKind(kind, name, src string, r diag.Ranging, format string, args ...interface{}) *Error {
	e := newError(name, src, r, format, args...)
	e.Kind = kind
	return e
}
