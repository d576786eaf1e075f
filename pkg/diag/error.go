package diag

import (
	"strings"

	"src.gramsh.sh/pkg/strutil"
)

// Error represents an error occupying a Context: something wrong in a
// grammar file, help file, or a piece of typed input. Kind labels what went
// wrong at a high level ("syntax error", "no match", "ambiguous"); Message
// gives the detail.
type Error struct {
	Kind    string
	Message string
	*Context
}

// NewError builds an Error whose Context spans the given Ranger within
// source, under name.
func NewError(kind, message, name, source string, r Ranger) *Error {
	return &Error{Kind: kind, Message: message, Context: NewContext(name, source, r)}
}

func (e *Error) Error() string {
	return strutil.Title(e.Kind) + ": " + e.Message
}

// AsDiagError returns e itself. Together with the AsDiagError methods that
// wrapper types holding an *Error define (e.g. pkg/gramsyntax.Error, which
// adds its own Kind), it lets pkg/errutil.Multi's diag.Errors combination
// path recognize them without pkg/errutil needing to know the wrapper types.
func (e *Error) AsDiagError() *Error { return e }

// Show renders the error's message followed by an indented source excerpt.
func (e *Error) Show(indent string) string {
	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(e.Error())
	sb.WriteByte('\n')
	sb.WriteString(indent)
	sb.WriteString(e.Context.ShowCompact(indent))
	return sb.String()
}

// Errors is a slice of *Error that itself implements error, used when a
// parse collects more than one problem before giving up (see
// pkg/errutil.Multi for the general-purpose version of this idea).
type Errors []*Error

func (es Errors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Show renders every error in es, one per (possibly multi-line) block,
// separated by blank lines.
func (es Errors) Show(indent string) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Show(indent)
	}
	return strings.Join(parts, "\n\n")
}
