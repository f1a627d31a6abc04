// frontier.go — the frontier tracker: a pure function of edge index to
// (previous frontier, entering vertices, leaving vertices, next frontier)
// plus the fixed slot assignment used to pack mate state into byte buffers.
//
// Grounded on original_source/MateFGeneral.hpp's GetPreviousFrontierValue /
// GetEnteringFrontierValue / GetLeavingFrontierValue / GetNextFrontierValue
// accessors, reworked per spec.md §4.1 into a precomputed table (a "pure
// function over the edge sequence", per spec.md §4.1's "Error conditions:
// none"), in the same precompute-then-serve style as bfs.walker's queue
// bookkeeping.
package zdd

// FrontierTracker precomputes, for every edge index, the vertices entering
// and leaving the frontier and the frontier's contents before and after
// that edge, plus a fixed slot index for every frontier vertex so mate
// state can be packed into a flat byte buffer.
type FrontierTracker struct {
	m int

	// prevFrontier[i] / nextFrontier[i]: sorted vertex ids live in the
	// frontier immediately before / after processing edge i.
	prevFrontier [][]int
	nextFrontier [][]int

	// entering[i] / leaving[i]: vertices that join / depart the frontier
	// exactly at edge i, sorted.
	entering [][]int
	leaving  [][]int

	// slot[i+1][v] gives the packed-buffer slot index of vertex v within
	// the frontier surviving past edge i (nextFrontier[i] minus
	// leaving[i]), or -1 if v is not in that frontier; slot[0] is the
	// empty frontier. slot is indexed first by level (0..m), second by
	// vertex id (1..n).
	slot [][]int

	// maxFrontierSize is the largest surviving frontier (nextFrontier[i]
	// minus leaving[i]) across all i, used
	// to size reusable scratch buffers (spec.md §9: "reuse a single
	// working buffer sized to the maximum frontier").
	maxFrontierSize int
}

// NewFrontierTracker precomputes the frontier tables for g's fixed edge order.
func NewFrontierTracker(g *Graph) *FrontierTracker {
	n, m := g.N(), g.M()

	// firstAppear[v] / lastAppear[v]: edge index of the first/last edge
	// touching vertex v, or -1 if v never appears.
	firstAppear := make([]int, n+1)
	lastAppear := make([]int, n+1)
	for v := 1; v <= n; v++ {
		firstAppear[v] = -1
		lastAppear[v] = -1
	}
	for i := 0; i < m; i++ {
		for _, v := range g.EdgeAt(i).Vertices {
			if firstAppear[v] == -1 {
				firstAppear[v] = i
			}
			lastAppear[v] = i
		}
	}

	ft := &FrontierTracker{
		m:            m,
		prevFrontier: make([][]int, m),
		nextFrontier: make([][]int, m),
		entering:     make([][]int, m),
		leaving:      make([][]int, m),
		slot:         make([][]int, m+1),
	}

	live := map[int]bool{}
	for i := 0; i < m; i++ {
		// prevFrontier(i): snapshot of live set before this edge's deltas.
		prev := make([]int, 0, len(live))
		for v := range live {
			prev = append(prev, v)
		}
		ft.prevFrontier[i] = sortedCopy(prev)

		// entering(i): vertices of e_i first appearing here and not already live.
		var enter []int
		seenThisEdge := map[int]bool{}
		for _, v := range g.EdgeAt(i).Vertices {
			if seenThisEdge[v] {
				continue
			}
			seenThisEdge[v] = true
			if firstAppear[v] == i && !live[v] {
				enter = append(enter, v)
			}
		}
		ft.entering[i] = sortedCopy(enter)
		for _, v := range enter {
			live[v] = true
		}

		next := make([]int, 0, len(live))
		for v := range live {
			next = append(next, v)
		}
		ft.nextFrontier[i] = sortedCopy(next)

		// leaving(i): vertices whose last appearance is e_i.
		var leave []int
		for _, v := range ft.nextFrontier[i] {
			if lastAppear[v] == i {
				leave = append(leave, v)
			}
		}
		ft.leaving[i] = sortedCopy(leave)
		for _, v := range leave {
			delete(live, v)
		}
	}

	// Build slot[i+1] tables: the frontier live AFTER edge i (i.e. next
	// frontier of i, which is also prevFrontier of i+1) laid out in a
	// fixed slot order (sorted by vertex id for determinism).
	for i := 0; i < m; i++ {
		tbl := make([]int, n+1)
		for v := range tbl {
			tbl[v] = -1
		}
		// the post-leave frontier: nextFrontier[i] minus leaving[i]
		leavingSet := map[int]bool{}
		for _, v := range ft.leaving[i] {
			leavingSet[v] = true
		}
		pos := 0
		for _, v := range ft.nextFrontier[i] {
			if leavingSet[v] {
				continue
			}
			tbl[v] = pos
			pos++
		}
		if pos > ft.maxFrontierSize {
			ft.maxFrontierSize = pos
		}
		ft.slot[i+1] = tbl
	}
	// slot[0] is the empty frontier before any edges are processed.
	empty := make([]int, n+1)
	for v := range empty {
		empty[v] = -1
	}
	ft.slot[0] = empty

	return ft
}

// M returns the number of edges this tracker was built for.
func (ft *FrontierTracker) M() int { return ft.m }

// PrevFrontier returns the sorted frontier vertices live before edge i.
func (ft *FrontierTracker) PrevFrontier(i int) []int { return ft.prevFrontier[i] }

// NextFrontier returns the sorted frontier vertices live after edge i
// (before leaving(i) is applied — i.e. including vertices about to leave).
func (ft *FrontierTracker) NextFrontier(i int) []int { return ft.nextFrontier[i] }

// Entering returns the sorted vertices entering the frontier at edge i.
func (ft *FrontierTracker) Entering(i int) []int { return ft.entering[i] }

// Leaving returns the sorted vertices leaving the frontier at edge i.
func (ft *FrontierTracker) Leaving(i int) []int { return ft.leaving[i] }

// FrontierAfter returns the sorted frontier vertices surviving past edge i
// (i.e. NextFrontier(i) with Leaving(i) removed) — the frontier that edge
// i+1 will see as its PrevFrontier.
func (ft *FrontierTracker) FrontierAfter(i int) []int {
	leavingSet := map[int]bool{}
	for _, v := range ft.leaving[i] {
		leavingSet[v] = true
	}
	out := make([]int, 0, len(ft.nextFrontier[i]))
	for _, v := range ft.nextFrontier[i] {
		if !leavingSet[v] {
			out = append(out, v)
		}
	}

	return out
}

// Slot returns the packed-buffer slot index of vertex v in the frontier
// surviving past edge level-1 (0 <= level <= M), i.e. the frontier edge
// level sees as its PrevFrontier, or -1 if v is not live there. level==0
// is the empty frontier before any edges.
func (ft *FrontierTracker) Slot(level, v int) int {
	if v < 0 || v >= len(ft.slot[level]) {
		return -1
	}

	return ft.slot[level][v]
}

// SlotCount returns the number of live frontier slots after edge level-1
// (the same indexing as Slot).
func (ft *FrontierTracker) SlotCount(level int) int {
	count := 0
	for _, s := range ft.slot[level] {
		if s >= 0 {
			count++
		}
	}

	return count
}

// MaxFrontierSize returns the largest frontier size over the whole sweep,
// used to size reusable scratch buffers.
func (ft *FrontierTracker) MaxFrontierSize() int { return ft.maxFrontierSize }
