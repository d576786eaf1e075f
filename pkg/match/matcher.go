package match

import (
	"strings"

	"src.gramsh.sh/pkg/gram"
)

// matchNode is the single recursive algorithm behind Check and MatchMax: it attempts to match node n against argv starting at pos,
// tracking (a) how far into argv it got, (b) whether it merely ran out of
// input or genuinely rejected a word, and (c) the needs-terminal flag of any
// Word actually consumed along the accepted path.
func matchNode(n gram.Node, argv []string, pos int) outcome {
	if n.IsZero() {
		return outcome{status: statusOK, consumed: pos}
	}
	switch n.Kind() {
	case gram.KindWord:
		return matchWordNode(n, argv, pos)
	case gram.KindVarargs:
		return outcome{status: statusOK, consumed: len(argv)}
	case gram.KindOptional:
		return matchOptional(n, argv, pos)
	case gram.KindPlus:
		return matchPlus(n, argv, pos)
	case gram.KindConcat:
		return matchConcat(n, argv, pos)
	case gram.KindAlternate:
		return matchAlternate(n, argv, pos)
	case gram.KindMacro:
		return matchNode(n.Body(), argv, pos)
	default:
		return outcome{status: statusFail, failPos: pos, failNode: n}
	}
}

func matchWordNode(n gram.Node, argv []string, pos int) outcome {
	if pos >= len(argv) {
		return outcome{status: statusWantMore, deficit: 1}
	}
	word := argv[pos]
	if v := n.Validator(); v != nil {
		if err := v.Validate(word); err != nil {
			return outcome{status: statusFail, failPos: pos, failNode: n, failMessage: err.Error()}
		}
	} else {
		match := word == n.Word()
		if !match && n.CaseInsensitive() {
			match = strings.EqualFold(word, n.Word())
		}
		if !match {
			return outcome{status: statusFail, failPos: pos, failNode: n}
		}
	}
	return outcome{status: statusOK, consumed: pos + 1, needsTerminal: n.NeedsTerminal()}
}

func matchOptional(n gram.Node, argv []string, pos int) outcome {
	inner := matchNode(n.Child(), argv, pos)
	if inner.status == statusOK {
		return inner
	}
	// Zero-word match is always available, so the failed/want-more attempt
	// does not make the Optional itself fail. Its fail fields are kept on the
	// returned outcome, but Check and matchAlternate read them only from a
	// non-OK outcome, so they are not reported.
	return outcome{status: statusOK, consumed: pos, failPos: inner.failPos, failNode: inner.failNode, failMessage: inner.failMessage}
}

func matchPlus(n gram.Node, argv []string, pos int) outcome {
	child := n.Child()
	min := n.Min()
	count := 0
	cur := pos
	needsTerminal := false
	var last outcome
	for {
		attempt := matchNode(child, argv, cur)
		if attempt.status != statusOK {
			last = attempt
			break
		}
		needsTerminal = needsTerminal || attempt.needsTerminal
		if attempt.consumed == cur {
			// Zero-word consumption always terminates the loop, regardless
			// of min, since repeating it forever would never make progress.
			return outcome{status: statusOK, consumed: cur, needsTerminal: needsTerminal}
		}
		cur = attempt.consumed
		count++
	}
	if count >= min {
		return outcome{status: statusOK, consumed: cur, needsTerminal: needsTerminal}
	}
	if last.status == statusWantMore || cur >= len(argv) {
		return outcome{status: statusWantMore, deficit: min - count}
	}
	return outcome{status: statusFail, failPos: last.failPos, failNode: last.failNode, failMessage: last.failMessage}
}

func matchConcat(n gram.Node, argv []string, pos int) outcome {
	a := matchNode(n.First(), argv, pos)
	if a.status == statusFail {
		return a
	}
	if a.status == statusWantMore {
		return outcome{status: statusWantMore, deficit: a.deficit + minWords(n.Rest())}
	}
	b := matchNode(n.Rest(), argv, a.consumed)
	b.needsTerminal = b.needsTerminal || a.needsTerminal
	return b
}

func matchAlternate(n gram.Node, argv []string, pos int) outcome {
	a := matchNode(n.First(), argv, pos)
	if a.status == statusOK {
		return a
	}
	b := matchNode(n.Rest(), argv, pos)
	if b.status == statusOK {
		return b
	}
	if a.status == statusWantMore && b.status == statusWantMore {
		if b.deficit < a.deficit {
			return b
		}
		return a
	}
	if a.status == statusWantMore {
		return b
	}
	if b.status == statusWantMore {
		return a
	}
	if b.deeper(a) {
		return b
	}
	return a
}

// minWords is a conservative static lower bound on how many argv words a
// node could ever require, used by matchConcat to extend a want-more
// deficit across a sequence boundary.
func minWords(n gram.Node) int {
	if n.IsZero() {
		return 0
	}
	switch n.Kind() {
	case gram.KindWord:
		return 1
	case gram.KindVarargs, gram.KindOptional:
		return 0
	case gram.KindPlus:
		if n.Min() == 0 {
			return 0
		}
		return minWords(n.Child())
	case gram.KindConcat:
		return minWords(n.First()) + minWords(n.Rest())
	case gram.KindAlternate:
		a, b := minWords(n.First()), minWords(n.Rest())
		if a < b {
			return a
		}
		return b
	case gram.KindMacro:
		return minWords(n.Body())
	default:
		return 0
	}
}
