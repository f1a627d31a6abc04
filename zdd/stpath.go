// stpath.go — the s-t path / Hamiltonian path / Hamiltonian cycle predicate.
//
// Grounded on original_source/MateSTPath.cpp's per-vertex degree+partner
// mate representation, reworked per spec.md §4.2 into dense []int slices
// indexed by vertex id (matching the original's array-based mate rather
// than a map, since frontier vertex ids are small dense integers) and the
// three-valued Verdict contract instead of the original's in-place
// terminal flags.
package zdd

import (
	"encoding/binary"
	"fmt"
)

// STPathOptions configures NewSTPathPredicate.
type STPathOptions struct {
	// Hamiltonian requires every vertex of the graph to lie on the path
	// (or cycle), not just S and T. Default false: an ordinary s-t path.
	Hamiltonian bool

	// Cycle requires the selected edges to form a single cycle through S
	// (T is ignored in this mode). Hamiltonian+Cycle together select
	// Hamiltonian cycles; Cycle without Hamiltonian is rejected since a
	// non-spanning simple cycle isn't one of spec.md's named operations.
	Cycle bool
}

// stMate is the per-vertex degree/partner state for the frontier's live
// vertices. deg[v] is the number of selected incident edges seen so far
// (0, 1, or 2); mate[v] is the far endpoint of the partial path v
// currently terminates, valid only when deg[v]==1.
type stMate struct {
	deg  []int
	mate []int

	// ownsS[v] is meaningful only while v is a live chain endpoint
	// (deg[v] < 2): it records whether the partial path terminating at v
	// contains S. Used in Cycle mode to tell "closing the cycle through S"
	// apart from "closing an unrelated, never-fixable sub-cycle".
	ownsS []bool
}

func (m *stMate) Clone() Mate {
	deg := make([]int, len(m.deg))
	copy(deg, m.deg)
	mate := make([]int, len(m.mate))
	copy(mate, m.mate)
	ownsS := make([]bool, len(m.ownsS))
	copy(ownsS, m.ownsS)

	return &stMate{deg: deg, mate: mate, ownsS: ownsS}
}

type stPredicate struct {
	g    *Graph
	ft   *FrontierTracker
	it   *introducedTracker
	s, t int
	opts STPathOptions
}

// NewSTPathPredicate builds the predicate selecting s-t paths (or, with
// opts.Hamiltonian/opts.Cycle, Hamiltonian paths/cycles) of g. Returns
// ErrEndpointNotFound if s or t is outside [1, g.N()], ErrInconsistentParams
// if s == t, or ErrUnsupportedCombination if opts.Cycle is set without
// opts.Hamiltonian.
func NewSTPathPredicate(g *Graph, s, t int, opts STPathOptions) (Predicate, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if s < 1 || s > g.N() || t < 1 || t > g.N() {
		return nil, fmt.Errorf("%w: s=%d t=%d n=%d", ErrEndpointNotFound, s, t, g.N())
	}
	if s == t {
		return nil, fmt.Errorf("%w: s must differ from t", ErrInconsistentParams)
	}
	if opts.Cycle && !opts.Hamiltonian {
		return nil, fmt.Errorf("%w: Cycle requires Hamiltonian", ErrUnsupportedCombination)
	}

	return &stPredicate{
		g:    g,
		ft:   NewFrontierTracker(g),
		it:   newIntroducedTracker(g),
		s:    s,
		t:    t,
		opts: opts,
	}, nil
}

func (p *stPredicate) NewMate() Mate {
	n := p.g.N()
	deg := make([]int, n+1)
	mate := make([]int, n+1)
	ownsS := make([]bool, n+1)

	return &stMate{deg: deg, mate: mate, ownsS: ownsS}
}

// EnterLevel initializes the slots of vertices entering the frontier at
// this level: deg 0, mate unset (0 means "no partner yet"), and ownsS set
// for a freshly introduced S (the single-vertex chain {S} trivially owns
// itself).
func (p *stPredicate) EnterLevel(level int, mate Mate) Mate {
	m := mate.(*stMate)
	for _, v := range p.ft.Entering(level) {
		m.deg[v] = 0
		m.mate[v] = 0
		m.ownsS[v] = v == p.s
	}

	return m
}

// endpoint returns the current far endpoint of the partial path v
// terminates: v itself if v has degree 0 (an isolated, not-yet-used
// vertex), else mate[v].
func endpoint(m *stMate, v int) int {
	if m.deg[v] == 0 {
		return v
	}

	return m.mate[v]
}

func (p *stPredicate) PreCheck(level int, mate Mate, branch int) Verdict {
	if branch == 0 {
		return Live
	}
	m := mate.(*stMate)
	u, v, _ := p.g.EdgeAt(level).Plain()
	if m.deg[u] >= 2 || m.deg[v] >= 2 {
		return Zero
	}

	return Live
}

func (p *stPredicate) Update(level int, mate Mate, branch int) Mate {
	m := mate.(*stMate)
	if branch == 0 {
		return m
	}
	u, v, _ := p.g.EdgeAt(level).Plain()

	eu, ev := endpoint(m, u), endpoint(m, v)
	ownsU := ownsAt(m, u, p.s)
	ownsV := ownsAt(m, v, p.s)

	if eu == v && ev == u {
		// Closing a cycle on exactly {u, v}'s partial-path component.
		// Legal only in Cycle mode, and only when that component is the
		// one containing S: any other closure would seal off a sub-cycle
		// that can never be extended into the single required Hamiltonian
		// cycle through S.
		if !p.opts.Cycle || !ownsU {
			m.deg[u] = 3 // sentinel "dead", forces PreCheck/PostCheck to Zero from now on
			m.deg[v] = 3
			return m
		}
		m.deg[u]++
		m.deg[v]++
		m.mate[u] = v
		m.mate[v] = u

		return m
	}

	// Merge the two partial paths ending at u and v into one path whose
	// new endpoints are eu and ev (their previous far ends).
	merged := ownsU || ownsV
	m.deg[u]++
	m.deg[v]++
	if m.deg[u] == 1 {
		m.mate[u] = ev
	}
	if m.deg[v] == 1 {
		m.mate[v] = eu
	}
	if eu != u {
		m.mate[eu] = ev
	}
	if ev != v {
		m.mate[ev] = eu
	}
	m.ownsS[eu] = merged
	m.ownsS[ev] = merged
	if m.deg[u] < 2 {
		m.ownsS[u] = merged
	}
	if m.deg[v] < 2 {
		m.ownsS[v] = merged
	}

	return m
}

// ownsAt reports whether the partial path currently terminating at v
// (v's own trivial one-vertex chain if deg[v]==0) contains s.
func ownsAt(m *stMate, v, s int) bool {
	if m.deg[v] == 0 {
		return v == s
	}

	return m.ownsS[v]
}

func (p *stPredicate) PostCheck(level int, mate Mate) Verdict {
	m := mate.(*stMate)
	isLast := level == p.ft.M()-1

	for _, v := range p.ft.Leaving(level) {
		switch {
		case v == p.s || v == p.t:
			if p.opts.Cycle {
				// s must close into the cycle with degree exactly 2.
				if m.deg[v] != 2 {
					return Zero
				}
			} else {
				if m.deg[v] != 1 {
					return Zero
				}
			}
		case p.opts.Hamiltonian:
			if m.deg[v] != 2 {
				return Zero
			}
		default:
			if m.deg[v] == 1 {
				return Zero // a dangling path end that is neither s nor t
			}
			if m.deg[v] >= 3 {
				return Zero
			}
		}
	}

	if p.opts.Hamiltonian && !p.it.AllIntroducedBy(level) {
		// Vertices not yet introduced still need to appear; can't finish yet.
		if isLast {
			return Zero
		}
	}

	if isLast {
		if !p.opts.Cycle {
			if m.deg[p.s] != 1 || m.deg[p.t] != 1 || m.mate[p.s] != p.t {
				return Zero
			}
		}
		if p.opts.Hamiltonian && !p.it.AllIntroducedBy(level) {
			return Zero
		}

		return One
	}

	return Live
}

// Canonicalize clears mate/ownsS for any surviving frontier vertex already
// at degree 2: PreCheck forbids ever incrementing a saturated vertex
// again, so its mate pointer is dead weight from here on. Two states
// differing only in which now-irrelevant value that dead pointer holds
// have identical future behavior and must pack to the same key (spec.md
// §8 item 6's canonicalization law); without this, construction would
// spuriously fail to merge them.
func (p *stPredicate) Canonicalize(level int, mate Mate) Mate {
	m := mate.(*stMate)
	for _, v := range p.ft.FrontierAfter(level) {
		if m.deg[v] >= 2 {
			m.mate[v] = 0
			m.ownsS[v] = false
		}
	}

	return m
}

func (p *stPredicate) Pack(level int, mate Mate) []byte {
	m := mate.(*stMate)
	frontier := p.ft.FrontierAfter(level)
	buf := make([]byte, 0, len(frontier)*6)
	for _, v := range frontier {
		deg := byte(m.deg[v])
		if p.opts.Cycle && m.ownsS[v] {
			deg |= 0x80 // fold ownsS into the high bit: deg never reaches 4
		}
		buf = append(buf, deg)
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(m.mate[v]))
		buf = append(buf, tmp[:]...)
	}

	return buf
}
