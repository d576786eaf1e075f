// Package complete implements tab completion (spec.md §4.5) on top of
// pkg/gram and pkg/match: given a grammar and the words typed so far, it
// derives every grammar state reachable by consuming those words exactly,
// then offers the leaves reachable from each such state as candidates for
// the word currently being typed.
package complete

import "src.gramsh.sh/pkg/gram"

// step is one way of consuming a prefix of words from a node: Consumed
// words were used, and Residual is what remains of that node afterward (the
// zero Node if the node was fully satisfied).
type step struct {
	consumed int
	residual gram.Node
}

// derive enumerates, non-deterministically, every way n can consume a
// prefix of words: the derivative-based approach handles Optional/Plus's
// take-or-skip choice and Alternate's branch choice as independent
// derivations rather than committing to one greedy path, since completion
// needs every state consistent with the words typed so far, not just the
// first one that validates.
func derive(pool *gram.Pool, n gram.Node, words []string) []step {
	if len(words) == 0 {
		return []step{{0, n}}
	}
	if n.IsZero() {
		return nil
	}
	switch n.Kind() {
	case gram.KindWord:
		out := []step{{0, n}}
		if matchWordExact(n, words[0]) {
			out = append(out, step{1, gram.Node{}})
		}
		return out
	case gram.KindVarargs:
		// Varargs can consume any number of words and always remains
		// itself afterward, since more can still follow.
		out := make([]step, 0, len(words)+1)
		for c := 0; c <= len(words); c++ {
			out = append(out, step{c, n})
		}
		return out
	case gram.KindOptional:
		out := derive(pool, n.Child(), words)
		return append(out, step{0, gram.Node{}})
	case gram.KindPlus:
		return derivePlus(pool, n.Child(), n.Min(), words)
	case gram.KindConcat:
		return deriveConcat(pool, n.First(), n.Rest(), words)
	case gram.KindAlternate:
		out := derive(pool, n.First(), words)
		return append(out, derive(pool, n.Rest(), words)...)
	case gram.KindMacro:
		return derive(pool, n.Body(), words)
	default:
		return nil
	}
}

func deriveConcat(pool *gram.Pool, first, rest gram.Node, words []string) []step {
	var out []step
	for _, s1 := range derive(pool, first, words) {
		if s1.residual.IsZero() {
			for _, s2 := range derive(pool, rest, words[s1.consumed:]) {
				out = append(out, step{s1.consumed + s2.consumed, s2.residual})
			}
			continue
		}
		if s1.consumed == len(words) {
			r, err := gram.Concat(pool, s1.residual.Ref(), rest.Ref())
			if err != nil {
				continue
			}
			out = append(out, step{s1.consumed, r})
			r.Release()
		}
	}
	return out
}

// derivePlus enumerates repeated derivations of child, requiring at least
// min completed repetitions. A repetition that consumes zero words never
// recurses again (matchPlus's "zero-word consumption terminates" rule),
// which is what keeps this finite.
func derivePlus(pool *gram.Pool, child gram.Node, min int, words []string) []step {
	var out []step
	if min == 0 {
		out = append(out, step{0, gram.Node{}})
	}
	for _, s1 := range derive(pool, child, words) {
		if s1.consumed == 0 {
			continue
		}
		if !s1.residual.IsZero() {
			if s1.consumed != len(words) {
				continue
			}
			cont, err := gram.Plus(pool, child.Ref(), 0)
			if err != nil {
				continue
			}
			r, err := gram.Concat(pool, s1.residual.Ref(), cont)
			if err != nil {
				continue
			}
			out = append(out, step{s1.consumed, r})
			r.Release()
			continue
		}
		if min <= 1 {
			out = append(out, step{s1.consumed, gram.Node{}})
		}
		rest := words[s1.consumed:]
		nextMin := min - 1
		if nextMin < 0 {
			nextMin = 0
		}
		for _, s2 := range derivePlus(pool, child, nextMin, rest) {
			out = append(out, step{s1.consumed + s2.consumed, s2.residual})
		}
	}
	return out
}

func matchWordExact(n gram.Node, word string) bool {
	if v := n.Validator(); v != nil {
		return v.Validate(word) == nil
	}
	if word == n.Word() {
		return true
	}
	return n.CaseInsensitive() && equalFold(word, n.Word())
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
