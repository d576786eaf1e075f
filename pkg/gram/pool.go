package gram

import "golang.org/x/xerrors"

// initialTableSize matches original_source/src/syntax.c's syntax_insert,
// which starts its hash table at 256 slots.
const initialTableSize = 256

// Pool is a process-local, single-threaded table of interned nodes, keyed
// by structural fingerprint. The zero Pool is not usable; construct one
// with NewPool.
type Pool struct {
	table [][]Node
	live  int
	roots []Node
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{table: make([][]Node, initialTableSize)}
}

// Len returns the number of distinct nodes currently interned.
func (p *Pool) Len() int { return p.live }

func (p *Pool) slot(fp uint32) int {
	return int(fp % uint32(len(p.table)))
}

// find looks for a node with fingerprint fp for which equal returns true.
// A fingerprint match alone is never taken as sufficient: every candidate
// in the bucket is checked with equal, giving the full structural
// comparison spec.md §4.1 mandates on a fingerprint hit (the original C
// implementation's single-slot table skips this check, which is a defect
// this pool avoids by keeping every colliding node in the bucket instead of
// overwriting).
func (p *Pool) find(fp uint32, equal func(Node) bool) Node {
	for _, n := range p.table[p.slot(fp)] {
		if n.p.fp == fp && equal(n) {
			return n
		}
	}
	return Node{}
}

func (p *Pool) insert(n Node) {
	if p.live >= len(p.table) {
		p.grow()
	}
	s := p.slot(n.p.fp)
	p.table[s] = append(p.table[s], n)
	p.live++
}

func (p *Pool) grow() {
	old := p.table
	p.table = make([][]Node, len(old)*2)
	for _, chain := range old {
		for _, n := range chain {
			s := p.slot(n.p.fp)
			p.table[s] = append(p.table[s], n)
		}
	}
}

func (p *Pool) remove(n Node) {
	s := p.slot(n.p.fp)
	chain := p.table[s]
	for i, m := range chain {
		if m.p == n.p {
			chain[i] = chain[len(chain)-1]
			p.table[s] = chain[:len(chain)-1]
			p.live--
			return
		}
	}
}

// intern finds-or-creates a node of kind k with fingerprint fp. When no
// matching node exists, fill is called on the freshly allocated payload to
// populate its kind-specific fields before the node is inserted; fill takes
// ownership of any Node references it stores. The second return value
// reports whether a new node was created; a constructor that passed
// ownership of its own operands to fill must instead release them itself
// when created is false, since in that case an already-existing node kept
// its own copies.
func (p *Pool) intern(k Kind, fp uint32, equal func(Node) bool, fill func(*nodeData)) (Node, bool) {
	if existing := p.find(fp, equal); !existing.IsZero() {
		return existing.Ref(), false
	}
	nd := &nodeData{pool: p, kind: k, fp: fp, refs: 1}
	fill(nd)
	n := Node{p: nd}
	p.insert(n)
	return n, true
}

// Root pins n for the lifetime of the pool: used for macro definitions and
// validator-bearing Words, which must survive until Teardown even though no
// external handle keeps a ref on them (spec.md §3, "Lifecycle").
func (p *Pool) Root(n Node) Node {
	p.roots = append(p.roots, n)
	return n
}

// Teardown releases every rooted handle and asserts the pool is left empty,
// matching spec.md §8 invariant 6. It returns an error rather than panicking
// so callers can report a leak without crashing.
func (p *Pool) Teardown() error {
	roots := p.roots
	p.roots = nil
	for _, n := range roots {
		n.Release()
	}
	if p.live != 0 {
		return xerrors.Errorf("pool teardown: %d node(s) still live", p.live)
	}
	return nil
}
