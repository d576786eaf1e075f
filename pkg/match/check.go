package match

import (
	"fmt"

	"src.gramsh.sh/pkg/argv"
	"src.gramsh.sh/pkg/diag"
	"src.gramsh.sh/pkg/gram"
)

// Check validates words against grammar, matching spec.md §4.4's
// validate contract in a single signed return value:
//
//   - result == len(words): grammar and input matched exactly.
//   - result > len(words): input was exhausted but grammar wanted more;
//     result-len(words) is a non-binding hint of how many more words.
//   - 0 <= result < len(words): grammar was exhausted (fully satisfied)
//     before input was; words[result] is the first unexpected word.
//   - result < 0: a word failed to satisfy the grammar at 1-indexed
//     argument -result; err describes why.
//
// needsTerminal reports whether the accepted path touched a Word declared
// with the /t modifier.
func Check(grammar gram.Node, words []string) (result int, needsTerminal bool, err error) {
	if len(words) == 0 {
		// spec.md §8: empty input against any grammar returns 0 and never
		// mutates state.
		return 0, false, nil
	}
	o := matchNode(grammar, words, 0)
	switch o.status {
	case statusOK:
		return o.consumed, o.needsTerminal, nil
	case statusWantMore:
		deficit := o.deficit
		if deficit < 1 {
			deficit = 1
		}
		return len(words) + deficit, false, nil
	default:
		e := newMismatchError(words, o)
		return -(o.failPos + 1), false, e
	}
}

// Error is a *diag.Error whose Context points at the offending word in the
// re-joined command line (built with pkg/argv.Join and pkg/argv.Offsets so
// the caret lands on the right byte column even though the original
// whitespace between words is not preserved by argv.Tokenize).
type Error struct {
	Diag *diag.Error
}

func (e *Error) Error() string             { return e.Diag.Error() }
func (e *Error) AsDiagError() *diag.Error  { return e.Diag }
func (e *Error) Show(indent string) string { return e.Diag.Show(indent) }

func newMismatchError(words []string, o outcome) *Error {
	line := argv.Join(words)
	offsets := argv.Offsets(words)
	from, to := len(line), len(line)
	if o.failPos < len(words) {
		from = offsets[o.failPos]
		to = from + len(words[o.failPos])
	}
	message := "unexpected argument"
	switch {
	case o.failMessage != "":
		message = o.failMessage
	case !o.failNode.IsZero() && o.failNode.Kind() == gram.KindWord:
		message = fmt.Sprintf("expected %q", o.failNode.Word())
	}
	return &Error{Diag: diag.NewError("no match", message, "argv", line, diag.Ranging{From: from, To: to})}
}
