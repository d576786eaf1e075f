package match

import "src.gramsh.sh/pkg/gram"

// WordMatch describes how a single candidate word relates to a Word node
// during completion: either it already equals the node's literal text (or
// satisfies its validator), or it is merely a textual prefix of the node's
// literal (validator-backed words never offer prefix completions, since
// there is no fixed literal to complete against — spec.md §9.3).
type WordMatch int

const (
	// NoMatch means word is neither an exact match nor, for a literal
	// keyword, a prefix of one.
	NoMatch WordMatch = iota
	// PrefixMatch means word is a non-empty prefix of a literal keyword's
	// text, shorter than the full keyword.
	PrefixMatch
	// ExactMatch means word fully satisfies the node (equal to the
	// keyword, modulo case-insensitivity, or accepted by its validator).
	ExactMatch
)

// MatchWord classifies word against a single Word node n, the primitive
// completion is built from (spec.md §4.5). Calling it on a non-Word node is
// a programmer error and panics.
func MatchWord(n gram.Node, word string) WordMatch {
	if n.IsZero() || n.Kind() != gram.KindWord {
		panic("match: MatchWord requires a Word node")
	}
	if v := n.Validator(); v != nil {
		if v.Validate(word) == nil {
			return ExactMatch
		}
		return NoMatch
	}
	literal := n.Word()
	if word == literal {
		return ExactMatch
	}
	if n.CaseInsensitive() {
		if len(word) == len(literal) && equalFold(word, literal) {
			return ExactMatch
		}
	}
	if word == "" {
		return NoMatch
	}
	if len(word) < len(literal) && hasPrefixFold(literal, word, n.CaseInsensitive()) {
		return PrefixMatch
	}
	return NoMatch
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func hasPrefixFold(s, prefix string, fold bool) bool {
	if len(prefix) > len(s) {
		return false
	}
	if !fold {
		return s[:len(prefix)] == prefix
	}
	return equalFold(s[:len(prefix)], prefix)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
