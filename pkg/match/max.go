package match

import "src.gramsh.sh/pkg/gram"

// MatchMax finds the longest prefix of words that grammar accepts (spec.md
// §4.6), and rebuilds it as a Concat chain of opaque ForceWord leaves so a
// caller can gram.Unparse it back out verbatim, e.g. to highlight "the part
// of the line recognized so far" while the rest of words is still being
// typed. It does not attempt to reconstruct a residual continuation
// grammar: what comes next may be any of several alternatives, and
// spec.md's line-editing use case only needs the recognized prefix, not a
// re-derived sub-grammar for what remains.
//
// consumed is the number of leading words matched; matched is the zero Node
// when consumed is 0.
func MatchMax(pool *gram.Pool, grammar gram.Node, words []string) (matched gram.Node, consumed int) {
	o := matchNode(grammar, words, 0)
	if o.status == statusOK {
		consumed = o.consumed
	} else {
		consumed = o.failPos
	}
	if consumed > len(words) {
		consumed = len(words)
	}
	if consumed <= 0 {
		return gram.Node{}, 0
	}
	matched, _ = gram.ForceWord(pool, words[0], 0)
	for i := 1; i < consumed; i++ {
		next, _ := gram.ForceWord(pool, words[i], 0)
		var err error
		matched, err = gram.Concat(pool, matched, next)
		if err != nil {
			// ForceWord leaves never fail Concat's own checks (only
			// Varargs does), so this is unreachable in practice.
			break
		}
	}
	return matched, consumed
}
