package gram

// Less implements the strict total order over nodes described in spec.md
// §4.2, used to sort and deduplicate alternation operands. The order is:
//
//  1. Varargs sorts before everything else.
//  2. Two Words order by (validator-present first), then bytewise on the
//     literal text.
//  3. A non-Concat compares against a Concat's First; ties sort the bare
//     form first.
//  4. Two Concats order lexicographically by (First, Rest).
//  5. A non-Optional compares against an Optional's Child; ties sort the
//     bare form first.
//  6. Two Optionals compare their children.
//  7. Alternate sorts after everything else.
//  8. Anything left (distinct nodes that tie on every rule above, e.g. two
//     Macros or two Pluses over unrelated children) falls back to
//     fingerprint order, and if that also ties, to the nodes' pointer
//     identity so the order is still a strict total order within one
//     process run (spec.md §5, "Ordering guarantees").
func Less(a, b Node) bool {
	return compare(a, b) < 0
}

func compare(a, b Node) int {
	if a.p == b.p {
		return 0
	}
	if a.IsZero() {
		return -1
	}
	if b.IsZero() {
		return 1
	}

	av, bv := isVarargs(a), isVarargs(b)
	if av || bv {
		switch {
		case av && bv:
			return 0
		case av:
			return -1
		default:
			return 1
		}
	}

	if a.Kind() == KindWord && b.Kind() == KindWord {
		return compareWords(a, b)
	}

	if isConcat(b) && !isConcat(a) {
		c := compare(a, b.First())
		if c != 0 {
			return c
		}
		return -1
	}
	if isConcat(a) && !isConcat(b) {
		return -compare(b, a)
	}
	if isConcat(a) && isConcat(b) {
		c := compare(a.First(), b.First())
		if c != 0 {
			return c
		}
		return compare(a.Rest(), b.Rest())
	}

	if isOptional(b) && !isOptional(a) {
		c := compare(a, b.Child())
		if c != 0 {
			return c
		}
		return -1
	}
	if isOptional(a) && !isOptional(b) {
		return -compare(b, a)
	}
	if isOptional(a) && isOptional(b) {
		return compare(a.Child(), b.Child())
	}

	aAlt, bAlt := isAlternate(a), isAlternate(b)
	if aAlt != bAlt {
		if aAlt {
			return 1
		}
		return -1
	}

	if a.Fingerprint() != b.Fingerprint() {
		if a.Fingerprint() < b.Fingerprint() {
			return -1
		}
		return 1
	}
	return comparePointer(a, b)
}

func compareWords(a, b Node) int {
	av, bv := a.Validator() != nil, b.Validator() != nil
	if av != bv {
		if av {
			return -1
		}
		return 1
	}
	if a.Word() != b.Word() {
		if a.Word() < b.Word() {
			return -1
		}
		return 1
	}
	if a.Fingerprint() != b.Fingerprint() {
		if a.Fingerprint() < b.Fingerprint() {
			return -1
		}
		return 1
	}
	return comparePointer(a, b)
}

// comparePointer is the deterministic-within-a-process fallback required
// when two distinct nodes tie on every structural key above.
func comparePointer(a, b Node) int {
	pa, pb := ptrValue(a), ptrValue(b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}
