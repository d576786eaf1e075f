package gram

import "sort"

// Alternate builds the ordered choice of a and b, consuming both
// references. The result is always in the normal form spec.md §3 and §4.2
// describe: right-leaning, sorted, deduplicated, and with shared prefixes
// factored out (`a b | a c` becomes `a (b|c)`; `ε | x` becomes
// `Optional(x)`).
//
// The single- and multi-leaf prefix factoring the spec describes as two
// separate mechanics (a whole-tree longest-common-prefix check, then a
// separate "recursive prefix factoring pass" over the sorted array) are
// realized here as one mechanic: buildAlternate peels exactly one shared
// leaf at a time and recurses on what's left, which reaches the same fixed
// point as factoring a multi-leaf prefix in one step.
func Alternate(pool *Pool, a, b Node) (Node, error) {
	if a.p == b.p {
		b.Release()
		return a, nil
	}
	if isVarargs(a) || isVarargs(b) {
		a.Release()
		b.Release()
		return Node{}, newSemanticError("varargs cannot appear inside alternate")
	}
	leaves := flattenAlternate(a)
	leaves = append(leaves, flattenAlternate(b)...)
	return buildAlternate(pool, leaves)
}

// flattenAlternate takes n's single reference and returns one reference per
// top-level alternative, iterating along n's right spine rather than
// recursing (spec.md §9, "Recursion depth"). If n is not itself an
// Alternate, the result is the single-element slice {n}.
func flattenAlternate(n Node) []Node {
	var leaves []Node
	cur := n
	for isAlternate(cur) {
		leaves = append(leaves, cur.First().Ref())
		cur = cur.Rest()
	}
	leaves = append(leaves, cur.Ref())
	n.Release()
	return leaves
}

// buildAlternate takes ownership of every element of leaves, which need not
// be sorted, deduplicated or prefix-factored, and returns their canonical
// alternation.
func buildAlternate(pool *Pool, leaves []Node) (Node, error) {
	leaves = sortDedup(leaves)
	return factorAndRebuild(pool, leaves)
}

func sortDedup(leaves []Node) []Node {
	sort.Slice(leaves, func(i, j int) bool { return Less(leaves[i], leaves[j]) })
	out := leaves[:0]
	for i, x := range leaves {
		if i > 0 && x.p == out[len(out)-1].p {
			x.Release()
			continue
		}
		out = append(out, x)
	}
	return out
}

// firstLeaf returns the node that must match first when x is tried:
// itself, unless x is a Concat, in which case its First operand.
func firstLeaf(x Node) Node {
	if isConcat(x) {
		return x.First()
	}
	return x
}

// factorAndRebuild groups adjacent (already sorted) entries that share a
// first leaf, factors each such run, and rebuilds a right-leaning Alternate
// spine over the resulting groups.
func factorAndRebuild(pool *Pool, leaves []Node) (Node, error) {
	if len(leaves) == 1 {
		return leaves[0], nil
	}
	var groups []Node
	i := 0
	for i < len(leaves) {
		j := i + 1
		for j < len(leaves) && firstLeaf(leaves[j]) == firstLeaf(leaves[i]) {
			j++
		}
		if j-i >= 2 {
			group, err := factorRun(pool, leaves[i:j])
			if err != nil {
				return Node{}, err
			}
			groups = append(groups, group)
		} else {
			groups = append(groups, leaves[i])
		}
		i = j
	}
	return rebuildSpine(groups)
}

// factorRun takes ownership of run, every element of which shares the same
// first leaf, strips that leaf from each, recurses on what's left, and
// re-emits concat(prefix, alternate-of-remainders). An element consisting
// of exactly the shared prefix contributes the empty alternative, realized
// as wrapping the remainder in Optional.
func factorRun(pool *Pool, run []Node) (Node, error) {
	prefix := firstLeaf(run[0]).Ref()
	var nonEmpty []Node
	hasEmpty := false
	for _, x := range run {
		sfx := stripFirst(x)
		if sfx.IsZero() {
			hasEmpty = true
			continue
		}
		nonEmpty = append(nonEmpty, sfx)
	}

	var rest Node
	var err error
	switch len(nonEmpty) {
	case 0:
		rest = Node{}
	case 1:
		rest = nonEmpty[0]
	default:
		rest, err = buildAlternate(pool, nonEmpty)
		if err != nil {
			prefix.Release()
			return Node{}, err
		}
	}

	if hasEmpty && !rest.IsZero() {
		rest, err = Optional(pool, rest)
		if err != nil {
			prefix.Release()
			return Node{}, err
		}
	}

	if rest.IsZero() {
		return prefix, nil
	}
	return Concat(pool, prefix, rest)
}

// stripFirst takes x's reference and returns what remains after removing
// its first leaf: x's Rest if x is a Concat, or the empty marker if x was
// exactly that one leaf.
func stripFirst(x Node) Node {
	if isConcat(x) {
		rest := x.Rest().Ref()
		x.Release()
		return rest
	}
	x.Release()
	return Node{}
}

// rebuildSpine conses already-factored, already-ordered groups into a
// right-leaning Alternate chain without re-flattening or re-sorting them.
func rebuildSpine(groups []Node) (Node, error) {
	if len(groups) == 0 {
		return Node{}, nil
	}
	result := groups[len(groups)-1]
	for i := len(groups) - 2; i >= 0; i-- {
		result = internAlternate(groups[i].p.pool, groups[i], result)
	}
	return result, nil
}

// internAlternate builds a single right-leaning Alternate node directly,
// without flattening or factoring: used only by rebuildSpine, which has
// already done both.
func internAlternate(pool *Pool, a, b Node) Node {
	fp := fingerprintAlternate(a.Fingerprint(), b.Fingerprint())
	equal := func(n Node) bool { return n.p.first.p == a.p && n.p.rest.p == b.p }
	n, created := pool.intern(KindAlternate, fp, equal, func(nd *nodeData) {
		nd.first = a
		nd.rest = b
	})
	if !created {
		a.Release()
		b.Release()
	}
	return n
}
