package gram

import "unicode"

// Word interns a plain keyword. word must already have any /i or /t
// modifier suffix stripped by the caller (the grammar parser owns
// recognizing those suffixes); ci and nt carry the corresponding flags.
func Word(pool *Pool, word string, ci, nt bool) (Node, error) {
	if err := checkWordLexical(word); err != nil {
		return Node{}, err
	}
	return internWord(pool, word, ci, nt, nil, false, 0)
}

// ValidatorWord interns a Word node backed by a registered data-type
// validator, e.g. INTEGER. name is the type's all-uppercase name.
func ValidatorWord(pool *Pool, name string, v Validator) (Node, error) {
	return internWord(pool, name, false, false, v, false, 0)
}

// ForceWord interns an opaque leaf that skips the keyword lexical rules
// entirely: used by the help binder to store prose blobs (tag distinguishes
// long help from short help) and by the matcher's match-max to store
// literal argv text that may not look like a legal keyword at all.
func ForceWord(pool *Pool, text string, tag int) (Node, error) {
	return internWord(pool, text, false, false, nil, true, tag)
}

func internWord(pool *Pool, word string, ci, nt bool, v Validator, forced bool, tag int) (Node, error) {
	fp := fingerprintWord(word, ci, nt, forced, tag, validatorName(v))
	equal := func(n Node) bool {
		return n.p.word == word && n.p.caseInsensitive == ci && n.p.needsTerminal == nt &&
			n.p.forced == forced && n.p.tag == tag && sameValidator(n.p.validator, v)
	}
	n, _ := pool.intern(KindWord, fp, equal, func(nd *nodeData) {
		nd.word = word
		nd.caseInsensitive = ci
		nd.needsTerminal = nt
		nd.validator = v
		nd.forced = forced
		nd.tag = tag
	})
	return n, nil
}

// checkWordLexical enforces spec.md §3's keyword lexical rules: a Word must
// start with a letter, contain only printable bytes, and must not mix
// upper- and lower-case letters; an all-uppercase word is reserved for
// macros and registered data types and so is also rejected here (the
// grammar parser resolves those before ever calling Word).
func checkWordLexical(word string) error {
	if word == "" {
		return newSemanticError("keyword must not be empty")
	}
	r := rune(word[0])
	if !unicode.IsLetter(r) {
		return newSemanticError("keyword must start with a letter: " + word)
	}
	hasUpper, hasLower := false, false
	for i := 0; i < len(word); i++ {
		b := word[i]
		if b < 0x20 || b == 0x7f {
			return newSemanticError("keyword contains a non-printable byte: " + word)
		}
		switch {
		case b >= 'A' && b <= 'Z':
			hasUpper = true
		case b >= 'a' && b <= 'z':
			hasLower = true
		}
	}
	if hasUpper && hasLower {
		return newSemanticError("mixed-case keyword is not allowed: " + word)
	}
	if hasUpper && !hasLower {
		return newSemanticError("all-uppercase keyword must be a registered macro or data type: " + word)
	}
	return nil
}

// Varargs interns the singleton "..." node.
func Varargs(pool *Pool) Node {
	fp := fingerprintVarargs()
	n, _ := pool.intern(KindVarargs, fp, func(Node) bool { return true }, func(*nodeData) {})
	return n
}

// Optional wraps x so it may match or be skipped entirely. It consumes x's
// reference. Optional(Optional(x)) collapses to Optional(x), and wrapping
// Varargs is rejected (spec.md §3).
func Optional(pool *Pool, x Node) (Node, error) {
	if isVarargs(x) {
		x.Release()
		return Node{}, newSemanticError("varargs cannot appear inside optional")
	}
	if isOptional(x) {
		return x, nil
	}
	fp := fingerprintOptional(x.Fingerprint())
	equal := func(n Node) bool { return n.p.child.p == x.p }
	n, created := pool.intern(KindOptional, fp, equal, func(nd *nodeData) {
		nd.child = x
	})
	if !created {
		x.Release()
	}
	return n, nil
}

// Plus wraps x in a repetition: min=0 for x*, min=1 for x+. It consumes x's
// reference. Applying Plus to an existing Plus, or to Varargs, is rejected.
func Plus(pool *Pool, x Node, min int) (Node, error) {
	if isVarargs(x) {
		x.Release()
		return Node{}, newSemanticError("varargs cannot appear inside plus")
	}
	if isPlus(x) {
		x.Release()
		return Node{}, newSemanticError("plus cannot be applied twice (x++ is not allowed)")
	}
	fp := fingerprintPlus(x.Fingerprint(), min)
	equal := func(n Node) bool { return n.p.child.p == x.p && n.p.min == min }
	n, created := pool.intern(KindPlus, fp, equal, func(nd *nodeData) {
		nd.child = x
		nd.min = min
	})
	if !created {
		x.Release()
	}
	return n, nil
}

// Concat builds the sequence a followed by b, consuming both references and
// rewriting to the right-leaning normal form: concat(concat(x,y),z) becomes
// concat(x, concat(y,z)).
func Concat(pool *Pool, a, b Node) (Node, error) {
	if isConcat(a) {
		x := a.First().Ref()
		y := a.Rest().Ref()
		a.Release()
		inner, err := Concat(pool, y, b)
		if err != nil {
			x.Release()
			return Node{}, err
		}
		return Concat(pool, x, inner)
	}

	length := 1
	if isConcat(b) {
		length = 1 + b.Length()
	}
	fp := fingerprintConcat(a.Fingerprint(), b.Fingerprint())
	equal := func(n Node) bool { return n.p.first.p == a.p && n.p.rest.p == b.p }
	n, created := pool.intern(KindConcat, fp, equal, func(nd *nodeData) {
		nd.first = a
		nd.rest = b
		nd.length = length
	})
	if !created {
		a.Release()
		b.Release()
	}
	return n, nil
}

// Macro interns a named grammar fragment. name must be all-uppercase; it
// consumes body's reference.
func Macro(pool *Pool, name string, body Node) (Node, error) {
	if !isAllUpper(name) {
		body.Release()
		return Node{}, newSemanticError("macro name must be all-uppercase: " + name)
	}
	fp := fingerprintMacro(name, body.Fingerprint())
	equal := func(n Node) bool { return n.p.name == name && n.p.body.p == body.p }
	n, created := pool.intern(KindMacro, fp, equal, func(nd *nodeData) {
		nd.name = name
		nd.body = body
	})
	if !created {
		body.Release()
	}
	return n, nil
}

func isAllUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
