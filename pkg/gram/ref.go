package gram

// Ref returns a new reference to n, incrementing its refcount. The zero
// Node's Ref is itself: the empty marker needs no counting.
func (n Node) Ref() Node {
	if n.IsZero() {
		return n
	}
	n.p.refs++
	return n
}

// Release gives back one reference to n. When the refcount reaches zero the
// node is removed from its pool and its children are released in turn.
//
// Concat and Alternate chains are released by iterating along the right
// spine rather than recursing, so a long grammar's teardown cannot overflow
// the stack (spec.md §9, "Recursion depth"). The left ("first") child of
// such a node is released recursively, but the right-leaning normal form
// guarantees that subtree is never itself a chain of the same kind, so its
// depth stays small.
func (n Node) Release() {
	if n.IsZero() {
		return
	}
	n.p.refs--
	if n.p.refs > 0 {
		return
	}
	cur := n
	for {
		nd := cur.p
		nd.pool.remove(cur)
		var next Node
		switch nd.kind {
		case KindOptional, KindPlus:
			nd.child.Release()
		case KindMacro:
			nd.body.Release()
		case KindConcat, KindAlternate:
			nd.first.Release()
			next = nd.rest
		}
		if next.IsZero() {
			return
		}
		next.p.refs--
		if next.p.refs > 0 {
			return
		}
		cur = next
	}
}
