package complete

import (
	"sort"

	"src.gramsh.sh/pkg/gram"
	"src.gramsh.sh/pkg/match"
)

// Complete returns the candidate completions for the word being typed,
// given the already-confirmed words before it (spec.md §4.5). max caps the
// number of candidates returned; truncated reports whether more existed
// than max allowed. confirmed is nil-safe: an empty confirmed slice completes
// against the very first word of grammar.
//
// A Word backed by a validator (INTEGER, IPADDR, ...) never contributes a
// literal candidate, since there is no fixed text to offer — only a
// grammar-authored example or the type's name would do, and spec.md leaves
// that presentation to the caller (SPEC_FULL.md §9.3).
func Complete(pool *gram.Pool, grammar gram.Node, confirmed []string, prefix string, max int) (candidates []string, truncated bool) {
	steps := derive(pool, grammar, confirmed)
	var leaves []gram.Node
	leafSeen := map[gram.Node]bool{}
	for _, s := range steps {
		if s.consumed != len(confirmed) {
			continue
		}
		for _, leaf := range firstLeaves(s.residual) {
			if leafSeen[leaf] {
				continue
			}
			leafSeen[leaf] = true
			leaves = append(leaves, leaf)
		}
	}

	textSeen := map[string]bool{}
	for _, leaf := range leaves {
		var text string
		switch {
		case leaf.Kind() == gram.KindVarargs:
			text = "..."
			if prefix != "" && !hasPrefix(text, prefix) {
				continue
			}
		case leaf.Validator() != nil:
			continue
		default:
			if prefix != "" && match.MatchWord(leaf, prefix) == match.NoMatch {
				continue
			}
			text = leaf.Word()
		}
		if textSeen[text] {
			continue
		}
		textSeen[text] = true
		candidates = append(candidates, text)
	}

	sort.Strings(candidates)
	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
		truncated = true
	}
	return candidates, truncated
}

// NextWords returns the same next-word set Complete derives, but keeps a
// validator-backed Word leaf instead of suppressing it, printing the
// datatype's own Name() (e.g. "IPV4ADDR") in its place. pkg/help's
// subcommand listing uses this instead of Complete, since a listing has no
// prefix to filter against and the datatype name is exactly what should
// print there (SPEC_FULL.md §9.3).
func NextWords(pool *gram.Pool, grammar gram.Node, confirmed []string) []string {
	steps := derive(pool, grammar, confirmed)
	var leaves []gram.Node
	leafSeen := map[gram.Node]bool{}
	for _, s := range steps {
		if s.consumed != len(confirmed) {
			continue
		}
		for _, leaf := range firstLeaves(s.residual) {
			if leafSeen[leaf] {
				continue
			}
			leafSeen[leaf] = true
			leaves = append(leaves, leaf)
		}
	}

	textSeen := map[string]bool{}
	var words []string
	for _, leaf := range leaves {
		var text string
		switch {
		case leaf.Kind() == gram.KindVarargs:
			text = "..."
		case leaf.Validator() != nil:
			text = leaf.Validator().Name()
		default:
			text = leaf.Word()
		}
		if textSeen[text] {
			continue
		}
		textSeen[text] = true
		words = append(words, text)
	}
	return words
}

// IsComplete reports whether confirmed is, by itself, already a fully valid
// command (every word consumed and the grammar requires nothing more).
func IsComplete(pool *gram.Pool, grammar gram.Node, confirmed []string) bool {
	for _, s := range derive(pool, grammar, confirmed) {
		if s.consumed == len(confirmed) && canBeEmpty(s.residual) {
			return true
		}
	}
	return false
}

func hasPrefix(s, prefix string) bool {
	return len(prefix) <= len(s) && s[:len(prefix)] == prefix
}

// firstLeaves returns the Word/Varargs leaves that could legally be the
// very next token matched by n.
func firstLeaves(n gram.Node) []gram.Node {
	if n.IsZero() {
		return nil
	}
	switch n.Kind() {
	case gram.KindWord, gram.KindVarargs:
		return []gram.Node{n}
	case gram.KindOptional, gram.KindPlus:
		return firstLeaves(n.Child())
	case gram.KindConcat:
		out := firstLeaves(n.First())
		if canBeEmpty(n.First()) {
			out = append(out, firstLeaves(n.Rest())...)
		}
		return out
	case gram.KindAlternate:
		return append(firstLeaves(n.First()), firstLeaves(n.Rest())...)
	case gram.KindMacro:
		return firstLeaves(n.Body())
	default:
		return nil
	}
}

// canBeEmpty reports whether n can be satisfied by zero words.
func canBeEmpty(n gram.Node) bool {
	if n.IsZero() {
		return true
	}
	switch n.Kind() {
	case gram.KindOptional:
		return true
	case gram.KindPlus:
		return n.Min() == 0 || canBeEmpty(n.Child())
	case gram.KindConcat:
		return canBeEmpty(n.First()) && canBeEmpty(n.Rest())
	case gram.KindAlternate:
		return canBeEmpty(n.First()) || canBeEmpty(n.Rest())
	case gram.KindMacro:
		return canBeEmpty(n.Body())
	default:
		return false
	}
}
