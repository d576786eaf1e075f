// Package match implements the matching algorithm spec.md §4.4 describes:
// Check (argv validation) and MatchMax (longest-matching-prefix
// reconstruction) share one recursive matcher. MatchWord, which completion
// uses, is separate: it classifies one word against one Word node as an
// exact, prefix or no match, and does not return the remaining grammar.
package match

import "src.gramsh.sh/pkg/gram"

// status classifies how far a node's match attempt against a slice of argv
// got.
type status int

const (
	// statusOK means the node matched, consuming zero or more words.
	statusOK status = iota
	// statusWantMore means input ran out before the node could be
	// satisfied; deficit is a non-binding lower bound on how many more
	// words would be needed.
	statusWantMore
	// statusFail means a word present in argv did not satisfy the node.
	statusFail
)

// outcome is the result of attempting to match one node against argv
// starting at some position.
type outcome struct {
	status        status
	consumed      int  // new argv position, meaningful when status == statusOK
	deficit       int  // meaningful when status == statusWantMore
	needsTerminal bool // ORed in along the accepted path

	failPos     int      // argument index of the failure
	failNode    gram.Node // the Word node that rejected argv[failPos], if any
	failMessage string   // validator's own message, if any
}

// deeper reports whether o represents a failure/want-more reached further
// into argv than other, used to pick which of two Alternate branches'
// failures to surface (spec.md §4.4, "furthest point reached").
func (o outcome) deeper(other outcome) bool {
	return o.progressPos() > other.progressPos()
}

func (o outcome) progressPos() int {
	switch o.status {
	case statusFail:
		return o.failPos
	case statusWantMore:
		return -1 // want-more never outranks an actual failure position
	default:
		return o.consumed
	}
}
