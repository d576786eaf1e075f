// Package gramsyntax implements the recursive-descent parser for the
// grammar DSL described in spec.md §4.3, grounded on
// src.elv.sh/pkg/parse's parser struct shape and on
// original_source/src/syntax.c's str2syntax.
package gramsyntax

import (
	"src.gramsh.sh/pkg/datatype"
	"src.gramsh.sh/pkg/diag"
	"src.gramsh.sh/pkg/gram"
)

// Parser turns grammar-DSL source lines into normalized *gram.Pool nodes.
// A Parser owns a macro table, which lines parsed by MergeLine or ParseFile
// may add to and later reference.
type Parser struct {
	Pool     *gram.Pool
	Registry *datatype.Registry
	macros   map[string]gram.Node
	rooted   map[string]bool
}

// NewParser returns a Parser that interns nodes in pool and resolves
// all-uppercase words against registry (built-in data types) and its own
// macro table.
func NewParser(pool *gram.Pool, registry *datatype.Registry) *Parser {
	return &Parser{
		Pool: pool, Registry: registry,
		macros: make(map[string]gram.Node), rooted: make(map[string]bool),
	}
}

// line is one parse of one source line; it holds the scan position, unlike
// Parser which is long-lived across many lines.
type line struct {
	p        *Parser
	name     string
	src      string
	pos      int
	overEOF  int
}

func (ln *line) peek() (byte, bool) {
	if ln.pos >= len(ln.src) {
		return 0, false
	}
	return ln.src[ln.pos], true
}

func (ln *line) next() (byte, bool) {
	b, ok := ln.peek()
	if ok {
		ln.pos++
	} else {
		ln.overEOF++
	}
	return b, ok
}

func (ln *line) backup() {
	if ln.overEOF > 0 {
		ln.overEOF--
		return
	}
	ln.pos--
}

func (ln *line) hasPrefix(s string) bool {
	return ln.pos+len(s) <= len(ln.src) && ln.src[ln.pos:ln.pos+len(s)] == s
}

func (ln *line) skipSpaces() {
	for {
		b, ok := ln.peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		ln.pos++
	}
}

func (ln *line) errorf(from int, format string, args ...interface{}) error {
	return newError(ln.name, ln.src, diag.Ranging{From: from, To: ln.pos}, format, args...)
}
