package gram

// Error reports a construction that the algebra rejects: a grammar that
// would otherwise violate one of the normal-form invariants in spec.md §3,
// e.g. varargs nested inside an optional, or a keyword that doesn't start
// with a letter. It corresponds to spec.md §7's SemanticError kind.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func newSemanticError(message string) error {
	return &Error{Message: message}
}

func sameValidator(a, b Validator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name()
}
