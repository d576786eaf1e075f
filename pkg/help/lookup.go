package help

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"src.gramsh.sh/pkg/complete"
	"src.gramsh.sh/pkg/gram"
)

// lookupLeaf walks a help forest matching argv exactly against a sequence
// of literal command words, the way Match-max locates the longest matching
// path (spec.md §4.7): a help forest's only structural kinds are Alternate
// (choice between headings) and Concat (a heading's word sequence followed
// by its ForceWord leaf), so a direct recursive walk plays the role the
// general Matcher would otherwise need to be invoked for.
func lookupLeaf(n gram.Node, argv []string, kind Kind) gram.Node {
	if n.IsZero() {
		return gram.Node{}
	}
	switch n.Kind() {
	case gram.KindAlternate:
		if l := lookupLeaf(n.First(), argv, kind); !l.IsZero() {
			return l
		}
		return lookupLeaf(n.Rest(), argv, kind)
	case gram.KindConcat:
		if len(argv) == 0 {
			return gram.Node{}
		}
		if n.First().Kind() != gram.KindWord || n.First().Word() != argv[0] {
			return gram.Node{}
		}
		return lookupLeaf(n.Rest(), argv[1:], kind)
	case gram.KindWord:
		if len(argv) != 0 || !n.Forced() || n.Tag() != int(kind) {
			return gram.Node{}
		}
		return n
	default:
		return gram.Node{}
	}
}

// ShowHelp returns the long-form help text bound to argv, or "" if none is
// bound.
func (b *Binder) ShowHelp(argv []string) string {
	leaf := lookupLeaf(b.Long, argv, Long)
	if leaf.IsZero() {
		return ""
	}
	return leaf.Word()
}

// PrintContextHelp writes the short-form help text bound to argv, followed
// by the prompt path argv itself, to w.
func (b *Binder) PrintContextHelp(w io.Writer, argv []string) {
	leaf := lookupLeaf(b.Short, argv, Short)
	prompt := strings.Join(argv, " ")
	if leaf.IsZero() {
		fmt.Fprintf(w, "%s\n", prompt)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", leaf.Word(), prompt)
}

// PrintContextHelpSubcommands enumerates, from syntax, every word that
// could legally follow argv, and prints each padded to a common column
// width followed by its short help looked up in help (or the bare word if
// help has nothing bound at argv+[word]).
func PrintContextHelpSubcommands(w io.Writer, pool *gram.Pool, syntax gram.Node, help *Binder, argv []string) {
	words := complete.NextWords(pool, syntax, argv)
	sort.Strings(words)

	width := 0
	for _, word := range words {
		if len(word) > width {
			width = len(word)
		}
	}

	next := make([]string, len(argv)+1)
	copy(next, argv)
	for _, word := range words {
		next[len(argv)] = word
		leaf := lookupLeaf(help.Short, next, Short)
		if leaf.IsZero() {
			fmt.Fprintf(w, "%s\n", word)
			continue
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, word, leaf.Word())
	}
}
