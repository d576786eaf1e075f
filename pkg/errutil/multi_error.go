// Package errutil combines multiple errors collected while processing
// something that keeps going past the first failure (a whole grammar file,
// a whole option string) into one error value, grounded on
// elves-elvish/pkg/errutil and its call sites in pkg/getopt and
// pkg/eval/vars.
package errutil

import (
	"strings"

	"src.gramsh.sh/pkg/diag"
)

// Multi combines multiple errors into one:
//
//   - If all errors are nil, it returns nil.
//
//   - If there is one non-nil error, it is returned.
//
//   - If every non-nil error is a *diag.Error, or a type with an
//     AsDiagError method (pkg/gramsyntax.Error, pkg/match.Error), the return value is a
//     diag.Errors, so callers still get its source-excerpt Show rendering
//     instead of a flat semicolon-joined message. This is what
//     pkg/gramsyntax.ParseFileCollecting relies on to report every
//     offending line in a grammar file with its own caret, not just its
//     own line of text.
//
//   - Otherwise, the return value is an error whose Error method joins the
//     messages of all non-nil arguments.
//
// If the input contains any error returned by Multi, such errors are flattened.
// The following two calls return the same value:
//
//	Multi(Multi(err1, err2), Multi(err3, err4))
//	Multi(err1, err2, err3, err4)
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			if multi, ok := err.(multiError); ok {
				nonNil = append(nonNil, multi...)
			} else if diagErrs, ok := err.(diag.Errors); ok {
				for _, d := range diagErrs {
					nonNil = append(nonNil, d)
				}
			} else {
				nonNil = append(nonNil, err)
			}
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		if diagErrs, ok := asDiagErrors(nonNil); ok {
			return diagErrs
		}
		return multiError(nonNil)
	}
}

// diagErrorer is implemented by *diag.Error and by wrapper types that define
// their own AsDiagError method (e.g. pkg/gramsyntax.Error).
type diagErrorer interface {
	AsDiagError() *diag.Error
}

// asDiagErrors returns errs as a diag.Errors if every one of them is a
// diagErrorer, so the caller can keep the caret-and-excerpt rendering
// diag.Errors.Show provides instead of falling back to multiError's flat
// message join.
func asDiagErrors(errs []error) (diag.Errors, bool) {
	out := make(diag.Errors, 0, len(errs))
	for _, err := range errs {
		d, ok := err.(diagErrorer)
		if !ok {
			return nil, false
		}
		out = append(out, d.AsDiagError())
	}
	return out, true
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
