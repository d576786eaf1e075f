// Package datatype implements the built-in data-type validators the
// grammar DSL exposes as all-uppercase words (INTEGER, IPADDR, and so on),
// grounded on original_source/src/datatypes.c's recli_datatype_parse_t
// contracts, and a Registry gathering them for the grammar parser.
package datatype

import (
	"errors"

	"golang.org/x/xerrors"
)

// Validator is the same interface pkg/gram.Validator declares, restated
// here so this package does not need to import pkg/gram; every type in
// this file implements it structurally.
type Validator interface {
	Name() string
	Validate(word string) error
}

// Registry maps an all-uppercase data-type name to its Validator. The zero
// Registry is empty; use NewRegistry to get one preloaded with the
// built-ins.
type Registry struct {
	byName map[string]Validator
}

// NewRegistry returns a Registry preloaded with every built-in validator
// listed in spec.md §4.3.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Validator)}
	for _, v := range []Validator{
		Boolean{}, Hostname{}, Integer{}, IPAddr{}, IPv4Addr{}, IPv6Addr{},
		IPPrefix{}, MACAddr{}, String{}, DQString{}, SQString{}, BQString{},
	} {
		r.byName[v.Name()] = v
	}
	return r
}

// Lookup returns the validator registered under name, or nil if none is.
func (r *Registry) Lookup(name string) Validator {
	return r.byName[name]
}

// errConflictingValidator is the cause wrapped by every RegistrationError.
var errConflictingValidator = errors.New("already registered with a different validator")

// RegistrationError reports an attempt to register a data type under a name
// that already names a different validator (spec.md §7's RegistrationError
// kind). It wraps errConflictingValidator with xerrors.Errorf so callers can
// errors.Is/errors.As the underlying cause out of the chain.
type RegistrationError struct {
	Name  string
	cause error
}

func (e *RegistrationError) Error() string {
	return xerrors.Errorf("data type %s: %w", e.Name, e.cause).Error()
}

func (e *RegistrationError) Unwrap() error { return e.cause }

// Register adds a custom validator under its own Name, so grammar authors
// can extend the built-in set. It returns *RegistrationError if name is
// already bound to a different validator.
func (r *Registry) Register(v Validator) error {
	if existing, ok := r.byName[v.Name()]; ok {
		if existing != v {
			return &RegistrationError{Name: v.Name(), cause: errConflictingValidator}
		}
		return nil
	}
	r.byName[v.Name()] = v
	return nil
}

// Names returns every registered data-type name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	return names
}
