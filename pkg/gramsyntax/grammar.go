package gramsyntax

import (
	"src.gramsh.sh/pkg/diag"
	"src.gramsh.sh/pkg/gram"
)

// ParseLine parses one grammar source line. It returns the zero Node (with
// a nil error) for a blank or comment (# or ;) line.
func (p *Parser) ParseLine(name, text string) (gram.Node, error) {
	ln := &line{p: p, name: name, src: text}
	return ln.parseTopLevel()
}

// MergeLine folds text's parse into existing via Alternate, matching
// spec.md §4.3's merge_line. A nil existing means "no accumulated grammar
// yet"; the result is then simply text's own parse, no Alternate involved
// (an Alternate with a genuinely empty operand cannot be constructed — see
// pkg/gram's algebra).
func (p *Parser) MergeLine(existing gram.Node, name, text string) (gram.Node, error) {
	parsed, err := p.ParseLine(name, text)
	if err != nil {
		if !existing.IsZero() {
			existing.Release()
		}
		return gram.Node{}, err
	}
	if parsed.IsZero() {
		return existing, nil
	}
	if existing.IsZero() {
		return parsed, nil
	}
	return gram.Alternate(p.Pool, existing, parsed)
}

func (ln *line) parseTopLevel() (gram.Node, error) {
	ln.skipSpaces()
	if b, ok := ln.peek(); !ok || b == '#' || b == ';' {
		return gram.Node{}, nil
	}

	if name, ok := ln.tryMacroName(); ok {
		body, err := ln.parseConcat()
		if err != nil {
			return gram.Node{}, err
		}
		if err := ln.expectEnd(); err != nil {
			body.Release()
			return gram.Node{}, err
		}
		node, err := gram.Macro(ln.p.Pool, name, body)
		if err != nil {
			return gram.Node{}, ln.wrap(0, err)
		}
		ln.p.macros[name] = ln.p.Pool.Root(node.Ref())
		return node, nil
	}

	node, err := ln.parseConcat()
	if err != nil {
		return gram.Node{}, err
	}
	if err := ln.checkVarargsPlacement(node); err != nil {
		node.Release()
		return gram.Node{}, err
	}
	if err := ln.expectEnd(); err != nil {
		node.Release()
		return gram.Node{}, err
	}
	return node, nil
}

// tryMacroName recognizes the "NAME=" prefix of a macro definition line
// without consuming it unless the whole prefix matches; NAME must be
// entirely uppercase letters, digits or underscores.
func (ln *line) tryMacroName() (string, bool) {
	start := ln.pos
	i := ln.pos
	for i < len(ln.src) && isMacroNameByte(ln.src[i]) {
		i++
	}
	if i == start || i >= len(ln.src) || ln.src[i] != '=' {
		return "", false
	}
	name := ln.src[start:i]
	if !isAllUpperASCII(name) {
		return "", false
	}
	ln.pos = i + 1
	return name, true
}

func isMacroNameByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// isAllUpperASCII reports whether s contains at least one uppercase letter
// and no lowercase one. tryMacroName's caller has already restricted s to
// [A-Z0-9_] before calling this, but parseWordAtom calls it on a word that
// may contain lowercase letters, where the "no lowercase" half of the check
// is what routes a mixed-case word like "Show" to checkWordLexical's
// mixed-case rejection instead of a spurious "undefined macro" error.
func isAllUpperASCII(s string) bool {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= 'A' && s[i] <= 'Z':
			hasUpper = true
		case s[i] >= 'a' && s[i] <= 'z':
			return false
		}
	}
	return hasUpper
}

func (ln *line) expectEnd() error {
	ln.skipSpaces()
	if b, ok := ln.peek(); ok && b != '#' && b != ';' {
		return ln.errorf(ln.pos, "unexpected character %q", b)
	}
	return nil
}

// parseConcat parses one or more atoms in sequence.
func (ln *line) parseConcat() (gram.Node, error) {
	first, err := ln.parseAtomWithModifier()
	if err != nil {
		return gram.Node{}, err
	}
	result := first
	for {
		ln.skipSpaces()
		if !ln.atAtomStart() {
			return result, nil
		}
		next, err := ln.parseAtomWithModifier()
		if err != nil {
			result.Release()
			return gram.Node{}, err
		}
		result, err = gram.Concat(ln.p.Pool, result, next)
		if err != nil {
			return gram.Node{}, ln.wrap(ln.pos, err)
		}
	}
}

func (ln *line) atAtomStart() bool {
	b, ok := ln.peek()
	if !ok {
		return false
	}
	return b == '[' || b == '(' || isWordStart(b) || ln.hasPrefix("...")
}

// parseAlt parses one or more '|'-separated concatenations, used inside
// parentheses; spec.md §4.3 rejects an empty alternative.
func (ln *line) parseAlt() (gram.Node, error) {
	start := ln.pos
	first, err := ln.parseConcatOrEmptyError(start)
	if err != nil {
		return gram.Node{}, err
	}
	result := first
	for {
		ln.skipSpaces()
		b, ok := ln.peek()
		if !ok || b != '|' {
			return result, nil
		}
		barPos := ln.pos
		ln.pos++
		next, err := ln.parseConcatOrEmptyError(barPos + 1)
		if err != nil {
			result.Release()
			return gram.Node{}, err
		}
		result, err = gram.Alternate(ln.p.Pool, result, next)
		if err != nil {
			return gram.Node{}, ln.wrap(barPos, err)
		}
	}
}

func (ln *line) parseConcatOrEmptyError(start int) (gram.Node, error) {
	ln.skipSpaces()
	if !ln.atAtomStart() {
		return gram.Node{}, ln.errorf(start, "empty alternative")
	}
	return ln.parseConcat()
}

// parseAtomWithModifier parses one atom, then a trailing '+' or '*' if
// present, applying gram.Plus.
func (ln *line) parseAtomWithModifier() (gram.Node, error) {
	start := ln.pos
	atom, err := ln.parseAtom()
	if err != nil {
		return gram.Node{}, err
	}
	b, ok := ln.peek()
	if !ok || (b != '+' && b != '*') {
		return atom, nil
	}
	ln.pos++
	if next, ok := ln.peek(); ok && (next == '+' || next == '*') {
		atom.Release()
		return gram.Node{}, ln.errorf(start, "repetition modifiers cannot be combined")
	}
	min := 0
	if b == '+' {
		min = 1
	}
	result, err := gram.Plus(ln.p.Pool, atom, min)
	if err != nil {
		return gram.Node{}, ln.wrap(start, err)
	}
	return result, nil
}

func (ln *line) parseAtom() (gram.Node, error) {
	ln.skipSpaces()
	start := ln.pos
	b, ok := ln.peek()
	if !ok {
		return gram.Node{}, ln.errorf(start, "expected an expression")
	}
	switch {
	case b == '[':
		ln.pos++
		inner, err := ln.parseConcatOrEmptyError(ln.pos)
		if err != nil {
			return gram.Node{}, err
		}
		ln.skipSpaces()
		if c, ok := ln.peek(); !ok || c != ']' {
			inner.Release()
			return gram.Node{}, ln.errorf(start, "unclosed '['")
		}
		ln.pos++
		result, err := gram.Optional(ln.p.Pool, inner)
		if err != nil {
			return gram.Node{}, ln.wrap(start, err)
		}
		return result, nil
	case b == '(':
		ln.pos++
		alt, err := ln.parseAlt()
		if err != nil {
			return gram.Node{}, err
		}
		ln.skipSpaces()
		if c, ok := ln.peek(); !ok || c != ')' {
			alt.Release()
			return gram.Node{}, ln.errorf(start, "unclosed '('")
		}
		ln.pos++
		return alt, nil
	case ln.hasPrefix("..."):
		ln.pos += 3
		return gram.Varargs(ln.p.Pool), nil
	case isWordStart(b):
		return ln.parseWordAtom()
	default:
		return gram.Node{}, ln.errorf(start, "unexpected character %q", rune(b))
	}
}

func isWordStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '-' || b == '_'
}

func (ln *line) parseWordAtom() (gram.Node, error) {
	start := ln.pos
	for {
		b, ok := ln.peek()
		if !ok || !isWordByte(b) {
			break
		}
		ln.pos++
	}
	word := ln.src[start:ln.pos]

	ci, nt := false, false
	for ln.hasPrefix("/i") || ln.hasPrefix("/t") {
		if ln.src[ln.pos+1] == 'i' {
			ci = true
		} else {
			nt = true
		}
		ln.pos += 2
	}
	if b, ok := ln.peek(); ok && b == '/' {
		return gram.Node{}, ln.errorf(ln.pos, "unknown modifier suffix")
	}

	if isAllUpperASCII(word) {
		return ln.resolveUpper(start, word, ci, nt)
	}
	n, err := gram.Word(ln.p.Pool, word, ci, nt)
	if err != nil {
		return gram.Node{}, ln.wrap(start, err)
	}
	return n, nil
}

func (ln *line) resolveUpper(start int, name string, ci, nt bool) (gram.Node, error) {
	if body, ok := ln.p.macros[name]; ok {
		if ci || nt {
			return gram.Node{}, ln.errorf(start, "/i and /t modifiers do not apply to macro references")
		}
		return body.Body().Ref(), nil
	}
	if v := ln.p.Registry.Lookup(name); v != nil {
		if ci || nt {
			return gram.Node{}, ln.errorf(start, "/i and /t modifiers do not apply to data types")
		}
		n, err := gram.ValidatorWord(ln.p.Pool, name, v)
		if err != nil {
			return gram.Node{}, ln.wrap(start, err)
		}
		if !ln.p.rooted[name] {
			ln.p.rooted[name] = true
			ln.p.Pool.Root(n.Ref())
		}
		return n, nil
	}
	return gram.Node{}, ln.errorf(start, "undefined macro or data type: %s", name)
}

// checkVarargsPlacement enforces spec.md §3's rule that Varargs may only
// ever be the final element of a top-level Concat, or the sole top-level
// node — never the sole element (spec.md §8's boundary behavior). pkg/gram's
// constructors reject a Varargs only when it is the direct operand of
// Optional, Plus or Alternate; a Varargs nested deeper inside one of them
// (e.g. `[a ...]`) is not rejected there, and this function does not look
// for it either. It checks only "not the sole top-level element" and "not
// anywhere but last on the top-level Concat spine".
func (ln *line) checkVarargsPlacement(n gram.Node) error {
	if n.IsZero() {
		return nil
	}
	if n.Kind() == gram.KindVarargs {
		return ln.errorf(0, "varargs cannot be the sole element of a line")
	}
	if n.Kind() != gram.KindConcat {
		return nil
	}
	cur := n
	for cur.Kind() == gram.KindConcat {
		if cur.First().Kind() == gram.KindVarargs {
			return ln.errorf(0, "varargs must be the last element")
		}
		cur = cur.Rest()
	}
	return nil
}

func (ln *line) wrap(pos int, err error) error {
	if e, ok := err.(*gram.Error); ok {
		return newErrorKind("SemanticError", ln.name, ln.src, diag.Ranging{From: pos, To: ln.pos}, "%s", e.Message)
	}
	return err
}
