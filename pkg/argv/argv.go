// Package argv tokenizes a typed command line into argument words, grounded
// on original_source/src/util.c's str2argv and strquotelen.
package argv

import "fmt"

// Error reports a tokenization failure, with Pos as the byte offset into
// the input where the problem was found.
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Tokenize splits line into whitespace-separated words. A double-, single-
// or back-quoted run is a single token that keeps its surrounding quote
// characters verbatim in the returned string, so downstream consumers see
// exactly what was typed (spec.md §6). A backslash escapes the following
// byte, including the closing quote, but only inside a quoted token;
// outside quotes a backslash is an ordinary byte and does not escape
// whitespace, matching str2argv's unquoted-word loop, which stops at the
// first space or quote byte unconditionally. A word that begins with "#" or
// ";" (outside of a quote) ends the line. An unterminated quote, or a quoted token not immediately
// followed by whitespace or end of line, is an *Error.
func Tokenize(line string) ([]string, error) {
	var argv []string
	i := 0
	n := len(line)
	for i < n {
		for i < n && isSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '#' || line[i] == ';' {
			break
		}
		start := i
		if isQuote(line[i]) {
			end, err := quoteEnd(line, i)
			if err != nil {
				return nil, err
			}
			i = end + 1
			if i < n && !isSpace(line[i]) {
				return nil, &Error{Pos: i, Message: "quoted token must be followed by whitespace"}
			}
			argv = append(argv, line[start:i])
			continue
		}
		for i < n && !isSpace(line[i]) && !isQuote(line[i]) {
			i++
		}
		if i < n && isQuote(line[i]) {
			return nil, &Error{Pos: i, Message: "word must be followed by whitespace, not a quote"}
		}
		argv = append(argv, line[start:i])
	}
	return argv, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isQuote(b byte) bool { return b == '"' || b == '\'' || b == '`' }

// quoteEnd returns the index of the closing quote matching line[start],
// scanning for a matching, unescaped quote byte.
func quoteEnd(line string, start int) (int, error) {
	q := line[start]
	i := start + 1
	for i < len(line) {
		if line[i] == '\\' && i+1 < len(line) {
			i += 2
			continue
		}
		if line[i] == q {
			return i, nil
		}
		i++
	}
	return 0, &Error{Pos: start, Message: fmt.Sprintf("unterminated %c-quoted string", q)}
}

// Join re-renders argv as a single line, space-separated, matching the way
// match.Error and diag.Context locate a caret column within a validated
// argument vector (spec.md §7, "the full typed line is printed").
func Join(argv []string) string {
	out := make([]byte, 0, len(argv)*8)
	for i, a := range argv {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, a...)
	}
	return string(out)
}

// Offsets returns the byte offset within Join(argv) at which argv[i]
// begins, for i in [0, len(argv)]; Offsets(argv)[len(argv)] is
// len(Join(argv)), used to place a caret just past the last token.
func Offsets(argv []string) []int {
	offsets := make([]int, len(argv)+1)
	pos := 0
	for i, a := range argv {
		offsets[i] = pos
		pos += len(a) + 1
	}
	offsets[len(argv)] = pos
	if pos > 0 {
		offsets[len(argv)] = pos - 1
	}
	return offsets
}
