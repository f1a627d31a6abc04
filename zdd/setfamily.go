// setfamily.go — the set-partition (exact cover) and set-cover predicates
// over a hypergraph of candidate blocks.
//
// Grounded on original_source/MateSetCover.hpp's per-element coverage
// bitset, reworked per spec.md §4.5 to share one mate/update/pack
// implementation between SetPartition and SetCover (they differ only in
// whether PreCheck rejects re-covering an already-covered element), the
// same "one struct, mode flag" sharing style core/types.go uses for
// directed/undirected graphs.
package zdd

import "fmt"

// setFamilyMate tracks, per frontier element (universe vertex), whether
// some selected block has covered it yet.
type setFamilyMate struct {
	covered []bool
}

func (m *setFamilyMate) Clone() Mate {
	covered := append([]bool(nil), m.covered...)

	return &setFamilyMate{covered: covered}
}

type setFamilyPredicate struct {
	g         *Graph
	ft        *FrontierTracker
	partition bool // true: SetPartition (exact cover); false: SetCover
}

// NewSetPartitionPredicate builds the predicate selecting exact covers of
// g's universe [1, g.N()] by g's hyperedges (blocks): every element
// covered by exactly one selected block. Returns ErrInconsistentParams if
// some element never appears in any block (it could never be covered).
func NewSetPartitionPredicate(g *Graph) (Predicate, error) {
	return newSetFamilyPredicate(g, true)
}

// NewSetCoverPredicate builds the predicate selecting covers of g's
// universe [1, g.N()] by g's hyperedges (blocks): every element covered
// by at least one selected block, overlaps allowed.
func NewSetCoverPredicate(g *Graph) (Predicate, error) {
	return newSetFamilyPredicate(g, false)
}

func newSetFamilyPredicate(g *Graph, partition bool) (Predicate, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	seen := make([]bool, g.N()+1)
	for i := 0; i < g.M(); i++ {
		for _, v := range g.EdgeAt(i).Vertices {
			seen[v] = true
		}
	}
	for v := 1; v <= g.N(); v++ {
		if !seen[v] {
			return nil, fmt.Errorf("%w: element %d appears in no block", ErrInconsistentParams, v)
		}
	}

	return &setFamilyPredicate{g: g, ft: NewFrontierTracker(g), partition: partition}, nil
}

func (p *setFamilyPredicate) NewMate() Mate {
	return &setFamilyMate{covered: make([]bool, p.g.N()+1)}
}

func (p *setFamilyPredicate) EnterLevel(level int, mate Mate) Mate {
	m := mate.(*setFamilyMate)
	for _, v := range p.ft.Entering(level) {
		m.covered[v] = false
	}

	return m
}

func (p *setFamilyPredicate) PreCheck(level int, mate Mate, branch int) Verdict {
	if branch == 0 || !p.partition {
		return Live
	}
	m := mate.(*setFamilyMate)
	for _, v := range p.g.EdgeAt(level).Vertices {
		if m.covered[v] {
			return Zero // exact cover: this element is already covered by an earlier block
		}
	}

	return Live
}

func (p *setFamilyPredicate) Update(level int, mate Mate, branch int) Mate {
	m := mate.(*setFamilyMate)
	if branch == 0 {
		return m
	}
	for _, v := range p.g.EdgeAt(level).Vertices {
		m.covered[v] = true
	}

	return m
}

func (p *setFamilyPredicate) PostCheck(level int, mate Mate) Verdict {
	m := mate.(*setFamilyMate)
	for _, v := range p.ft.Leaving(level) {
		if !m.covered[v] {
			return Zero // element departs the frontier forever while still uncovered
		}
	}
	if level == p.ft.M()-1 {
		return One
	}

	return Live
}

// Canonicalize is a no-op: setFamilyMate carries no labels that need
// renumbering, only a flat per-element coverage bit.
func (p *setFamilyPredicate) Canonicalize(level int, mate Mate) Mate {
	return mate
}

func (p *setFamilyPredicate) Pack(level int, mate Mate) []byte {
	m := mate.(*setFamilyMate)
	frontier := p.ft.FrontierAfter(level)
	buf := make([]byte, (len(frontier)+7)/8)
	for i, v := range frontier {
		if m.covered[v] {
			buf[i/8] |= 1 << uint(i%8)
		}
	}

	return buf
}
