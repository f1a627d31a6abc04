// driver.go — the level-by-level frontier construction loop.
//
// Grounded on flow/dinic.go's level-graph BFS sweep (build one level
// completely, check context cancellation once per level, then advance),
// generalized per spec.md §5-§6 into the predicate-driven construction
// loop: at each edge index, every live node from the previous level is
// expanded along both branches through EnterLevel -> PreCheck -> Update ->
// PostCheck -> (Canonicalize -> Pack), with the resulting keys interned
// (node.go/intern.go) to deduplicate equivalent partial states.
package zdd

import (
	"context"
	"fmt"
)

// liveNode is one surviving interior node while Construct is expanding
// level i: its final id from level i-1 (or the placeholder 0 for the synthetic root)
// paired with the canonical mate that produced it.
type liveNode struct {
	id   NodeID
	mate Mate
}

// pendingEdge records that the node identified by fromID should link its
// given branch either to a terminal (term, isTerm=true) or to whatever
// final NodeID the entry ends up with after this level's finalize pass.
type pendingEdge struct {
	fromID NodeID
	branch int
	isTerm bool
	term   NodeID
	entry  *internEntry
}

// Construct runs the frontier-based construction loop over g under pred,
// producing the unreduced pseudo-ZDD trace. Edge order is g's fixed order
// (spec.md §3); two calls with a permuted edge order may produce a
// structurally different PseudoZDD but an identical solution count
// (Testable Property 3).
func Construct(g *Graph, pred Predicate, opts ...Option) (*PseudoZDD, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		return nil, ErrUnknownPredicate
	}

	o := resolveOptions(opts...)
	m := g.M()

	nodes := make(map[NodeID]*ZDDNode)
	var nextID NodeID = firstNodeID

	root := pred.NewMate()
	current := []liveNode{{id: 0, mate: root}} // id 0 is a placeholder; level 0 always has exactly one live node (the root), linked below.
	rootAssigned := false
	var rootID NodeID

	for level := 0; level < m; level++ {
		if err := checkCtx(o.Ctx); err != nil {
			return nil, err
		}

		var interner interface {
			getOrCreate([]byte, Mate) *internEntry
			finalize(*NodeID) []*internEntry
		}
		if o.Workers > 1 {
			interner = newShardedInterner()
		} else {
			interner = newInterner()
		}

		edges := make([]pendingEdge, 0, len(current)*2)

		expandOne := func(ln liveNode) []pendingEdge {
			mate := pred.EnterLevel(level, ln.mate)
			var out []pendingEdge
			for branch := 0; branch < 2; branch++ {
				v := pred.PreCheck(level, mate, branch)
				var verdict Verdict
				var next Mate
				if v != Live {
					verdict = v
				} else {
					next = pred.Update(level, mate.Clone(), branch)
					verdict = pred.PostCheck(level, next)
				}

				switch verdict {
				case Zero:
					out = append(out, pendingEdge{fromID: ln.id, branch: branch, isTerm: true, term: Bot})
				case One:
					out = append(out, pendingEdge{fromID: ln.id, branch: branch, isTerm: true, term: Top})
				default:
					canon := pred.Canonicalize(level, next)
					key := pred.Pack(level, canon)
					entry := interner.getOrCreate(key, canon)
					out = append(out, pendingEdge{fromID: ln.id, branch: branch, entry: entry})
				}
			}

			return out
		}

		if o.Workers > 1 && len(current) > 1 {
			results := make([][]pendingEdge, len(current))
			sem := make(chan struct{}, o.Workers)
			done := make(chan int, len(current))
			for i, ln := range current {
				i, ln := i, ln
				sem <- struct{}{}
				go func() {
					defer func() { <-sem; done <- i }()
					results[i] = expandOne(ln)
				}()
			}
			for range current {
				<-done
			}
			for _, r := range results {
				edges = append(edges, r...)
			}
		} else {
			for _, ln := range current {
				edges = append(edges, expandOne(ln)...)
			}
		}

		entries := interner.finalize(&nextID)

		// Link this level's nodes (one per live node in `current`) now that
		// every child entry at the next level has a final NodeID.
		byFromID := make(map[NodeID]*ZDDNode)
		for _, ln := range current {
			if ln.id == 0 && !rootAssigned {
				continue // placeholder root handled specially below
			}
			byFromID[ln.id] = &ZDDNode{ID: ln.id, Level: level}
		}

		resolveChild := func(pe pendingEdge) NodeID {
			if pe.isTerm {
				return pe.term
			}

			return pe.entry.id
		}

		if !rootAssigned {
			// The synthetic root (level 0) has exactly one liveNode with
			// placeholder id 0; its real id is firstNodeID, assigned here.
			rootID = nextID
			nextID++
			byFromID[0] = &ZDDNode{ID: rootID, Level: 0}
			rootAssigned = true
		}

		for _, pe := range edges {
			n := byFromID[pe.fromID]
			if pe.fromID == 0 {
				n = byFromID[0]
			}
			child := resolveChild(pe)
			if pe.branch == 0 {
				n.Lo = child
			} else {
				n.Hi = child
			}
		}
		for id, n := range byFromID {
			if id == 0 {
				nodes[rootID] = n
				continue
			}
			nodes[id] = n
		}

		// Advance: the next level's live nodes are exactly this level's
		// distinct interned entries, each carrying its canonical mate
		// forward (EnterLevel will run again against it at level+1).
		next := make([]liveNode, len(entries))
		for i, e := range entries {
			next[i] = liveNode{id: e.id, mate: e.mate}
		}
		current = next

		if o.Verbose {
			fmt.Printf("zdd: level %d/%d done, %d live nodes, %d interned\n", level, m-1, len(current), len(entries))
		}
		if o.OnLevelDone != nil {
			o.OnLevelDone(level, len(current), len(entries))
		}
		if o.InternBudgetBytes > 0 {
			var used int64
			for _, e := range entries {
				used += int64(len(e.key))
			}
			if used > o.InternBudgetBytes {
				return nil, ErrInternBudgetExceeded
			}
		}
	}

	if !rootAssigned {
		// m == 0 never happens (NewGraph rejects empty edge lists), but guard
		// defensively rather than returning a PseudoZDD with no Root.
		return nil, ErrEmptyEdgeList
	}

	return &PseudoZDD{Root: rootID, Nodes: nodes, M: m}, nil
}

// checkCtx returns ctx.Err() if ctx has already been cancelled, nil
// otherwise. Checked once per level (not once per node), matching
// flow/dinic.go's per-phase cancellation granularity.
func checkCtx(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
