package gram

// WalkAction controls how Walk proceeds after visiting a node, generalizing
// the original's CLI_WALK_{STOP,CONTINUE,SKIP} result codes (CLI_WALK_INORDER
// / CLI_WALK_POSTORDER / CLI_WALK_REPEAT have no equivalent here: every
// caller in this package only ever needs preorder, and the matcher's
// Plus-repetition logic lives in pkg/match rather than being expressed as a
// walk action, since its control flow — track a deepest failure, stop the
// moment one iteration consumes zero words — doesn't fit a generic visitor).
type WalkAction int

const (
	// WalkContinue descends into the node's children as normal.
	WalkContinue WalkAction = iota
	// WalkSkip does not descend into the node's children, but the walk
	// continues elsewhere.
	WalkSkip
	// WalkStop ends the walk immediately.
	WalkStop
)

// WalkFunc is called once per visited node, in preorder.
type WalkFunc func(n Node) WalkAction

// Walk visits n and every node reachable from it, preorder, following
// Concat and Alternate's right spine iteratively so a deep grammar cannot
// overflow the stack; only the (always shallow) First operand of such a
// node is visited via recursion. It returns false if the walk was stopped
// early via WalkStop.
func Walk(n Node, visit WalkFunc) bool {
	cur := n
	for {
		if cur.IsZero() {
			return true
		}
		switch visit(cur) {
		case WalkStop:
			return false
		case WalkSkip:
			return true
		}
		switch cur.Kind() {
		case KindOptional, KindPlus:
			cur = cur.Child()
		case KindMacro:
			cur = cur.Body()
		case KindConcat, KindAlternate:
			if !Walk(cur.First(), visit) {
				return false
			}
			cur = cur.Rest()
		default:
			return true
		}
	}
}
