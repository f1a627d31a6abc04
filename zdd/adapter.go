// adapter.go — build a zdd.Graph from a core.Graph plus an explicit edge
// order, since core.Graph's maps (guarded by internal RWMutexes) give no
// ordering guarantee of their own.
//
// Grounded on tsp/solve.go's SolveWithGraph, which performs the same
// core.Graph -> dense-index adapter step before running its own algorithm.
package zdd

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// FromCoreGraph builds a Graph from cg, assigning dense vertex ids [1, n]
// in sorted order of cg's string vertex IDs, and a fixed edge order taken
// from edgeOrder (a list of core edge IDs). Returns ErrEmptyEdgeList if
// edgeOrder is empty, or ErrInvalidVertex wrapping the core lookup error
// if edgeOrder names an edge cg does not have.
//
// The returned idOf/vertexOf maps let a caller translate between cg's
// string vertex IDs and this package's dense integer ids.
func FromCoreGraph(cg *core.Graph, edgeOrder []string) (g *Graph, idOf map[string]int, vertexOf map[int]string, err error) {
	if cg == nil {
		return nil, nil, nil, ErrNilGraph
	}
	if len(edgeOrder) == 0 {
		return nil, nil, nil, ErrEmptyEdgeList
	}

	names := cg.Vertices()
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	idOf = make(map[string]int, len(sorted))
	vertexOf = make(map[int]string, len(sorted))
	for i, name := range sorted {
		id := i + 1
		idOf[name] = id
		vertexOf[id] = name
	}

	edges := make([][2]int, 0, len(edgeOrder))
	for _, eid := range edgeOrder {
		e, gerr := cg.GetEdge(eid)
		if gerr != nil {
			return nil, nil, nil, fmt.Errorf("%w: edge %q: %s", ErrInvalidVertex, eid, gerr)
		}
		u, ok := idOf[e.From]
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: vertex %q", ErrInvalidVertex, e.From)
		}
		v, ok := idOf[e.To]
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: vertex %q", ErrInvalidVertex, e.To)
		}
		edges = append(edges, [2]int{u, v})
	}

	g, err = NewGraph(len(sorted), edges)
	if err != nil {
		return nil, nil, nil, err
	}

	return g, idOf, vertexOf, nil
}
