// Package gram implements a content-addressed, hash-consed syntax DAG: the
// node pool and node algebra used to represent grammar expressions.
//
// A Node is a lightweight handle into a Pool. The zero Node value is the
// "empty" marker: it represents the epsilon sequence (matches zero words)
// and is never itself interned or reference-counted. Every non-zero Node
// returned by a constructor in this package or by Node.Ref carries a
// reference that the caller must eventually give back with Node.Release.
package gram

// Kind identifies which of the seven syntax-node variants a Node holds.
type Kind uint8

const (
	KindWord Kind = iota
	KindVarargs
	KindOptional
	KindPlus
	KindConcat
	KindAlternate
	KindMacro
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "Word"
	case KindVarargs:
		return "Varargs"
	case KindOptional:
		return "Optional"
	case KindPlus:
		return "Plus"
	case KindConcat:
		return "Concat"
	case KindAlternate:
		return "Alternate"
	case KindMacro:
		return "Macro"
	default:
		return "?"
	}
}

// Validator recognizes whether a word satisfies a registered data type. It
// is stored on a Word node in place of the C original's aliased
// function-pointer "next" field.
type Validator interface {
	// Name is the all-uppercase name the grammar DSL refers to the type by,
	// e.g. "INTEGER".
	Name() string
	// Validate returns nil if word is an acceptable value of this type, or
	// an error describing why not.
	Validate(word string) error
}

// Node is a handle to a node owned by a Pool. Nodes compare for identity
// with ==: because every node is interned, two handles referring to
// structurally equal content are always the same Node value.
type Node struct {
	p *nodeData
}

// nodeData is the payload behind a non-zero Node. Only the fields relevant
// to Kind are meaningful; this mirrors the C original's single tagged
// struct rather than modeling each variant as a separate Go type, since the
// pool, fingerprinting and release logic all operate on nodes generically
// by kind.
type nodeData struct {
	pool *Pool
	kind Kind
	fp   uint32
	refs int

	// Word
	word            string
	caseInsensitive bool
	needsTerminal   bool
	validator       Validator
	forced          bool // ForceWord: skip keyword lexical rules
	tag             int  // ForceWord payload tag, e.g. help.Kind

	// Optional, Plus: child. Plus additionally uses min.
	child Node
	min   int

	// Concat, Alternate
	first  Node
	rest   Node
	length int // Concat only: count of leaves on the right spine

	// Macro
	name string
	body Node
}

// IsZero reports whether n is the empty marker.
func (n Node) IsZero() bool { return n.p == nil }

// Kind returns the node's variant. Calling Kind on the zero Node panics;
// callers must check IsZero first, exactly as they must check a Ranger for
// a valid range before calling Range.
func (n Node) Kind() Kind { return n.p.kind }

// Fingerprint returns the node's 32-bit structural fingerprint.
func (n Node) Fingerprint() uint32 { return n.p.fp }

// Word returns the literal text of a Word node.
func (n Node) Word() string { return n.p.word }

// CaseInsensitive reports whether a Word node was declared with the /i
// modifier.
func (n Node) CaseInsensitive() bool { return n.p.caseInsensitive }

// NeedsTerminal reports whether a Word node was declared with the /t
// modifier.
func (n Node) NeedsTerminal() bool { return n.p.needsTerminal }

// Validator returns the Word node's validator, or nil for a plain keyword.
func (n Node) Validator() Validator { return n.p.validator }

// Forced reports whether the node was created via ForceWord, meaning it is
// an opaque leaf that bypassed the keyword lexical rules (used by the help
// binder and by match-max's argv reconstruction).
func (n Node) Forced() bool { return n.p.forced }

// Tag returns the ForceWord payload tag (e.g. a help-text kind).
func (n Node) Tag() int { return n.p.tag }

// Child returns the operand of an Optional or Plus node.
func (n Node) Child() Node { return n.p.child }

// Min returns the minimum repetition count of a Plus node (0 or 1).
func (n Node) Min() int { return n.p.min }

// First returns the left operand of a Concat or Alternate node.
func (n Node) First() Node { return n.p.first }

// Rest returns the right operand of a Concat or Alternate node.
func (n Node) Rest() Node { return n.p.rest }

// Length returns the number of leaves reachable along a Concat node's right
// spine.
func (n Node) Length() int { return n.p.length }

// Name returns a Macro node's uppercase name.
func (n Node) Name() string { return n.p.name }

// Body returns a Macro node's expansion.
func (n Node) Body() Node { return n.p.body }

func isKind(n Node, k Kind) bool { return !n.IsZero() && n.p.kind == k }

func isVarargs(n Node) bool  { return isKind(n, KindVarargs) }
func isOptional(n Node) bool { return isKind(n, KindOptional) }
func isPlus(n Node) bool     { return isKind(n, KindPlus) }
func isConcat(n Node) bool   { return isKind(n, KindConcat) }
func isAlternate(n Node) bool {
	return isKind(n, KindAlternate)
}
