// Package zdd builds a frontier-based pseudo-ZDD: an unreduced decision-diagram
// trace over the edge subsets of a graph (or hypergraph) that satisfy a
// structural predicate — an s–t path, a Hamiltonian path/cycle, a spanning
// forest with a fixed component count, a set partition, or a set cover.
//
// What
//
//   - Sweeps a fixed edge order one edge at a time, tracking a sliding
//     "frontier" of vertices touched by both processed and unprocessed edges.
//   - Maintains a compact "mate" summary of the partial solution restricted
//     to the frontier, specialized per Predicate.
//   - Classifies every partial assignment into the 0-terminal, the
//     1-terminal, or a fresh interior node, deduplicating equivalent partial
//     states by their packed mate key.
//   - Emits a DAG of decision nodes: the pseudo-ZDD.
//
// Why
//
//   - Counting or enumerating graph families (paths, cycles, forests, set
//     covers, ...) by brute force is exponential in the edge count; the
//     frontier method keeps live state proportional to the frontier size
//     instead, which for sparse graphs under a good edge order stays small.
//
// Non-goals
//
//   - No BDD/ZDD algebra (apply, compose) and no reduction to canonical
//     form — this package produces the raw pseudo-ZDD trace only.
//   - No GUI/visualization, no dynamic edge reordering, no incremental
//     update after graph mutation.
//   - Graph file I/O, argument parsing, and final serialization are
//     external collaborators; see cmd/zddgen for a thin example.
//
// Determinism
//
//	Construct is deterministic given (graph, edge order, predicate): children
//	are always derived in (0-branch, 1-branch) order, interning uses the
//	lexicographic packed key, and component/mate relabeling uses order of
//	first appearance along the next frontier. Running it twice on the same
//	input yields byte-identical pseudo-ZDDs.
//
// Usage
//
//	g, _ := zdd.NewGraph(3, [][2]int{{1, 2}, {2, 3}, {1, 3}})
//	pred, _ := zdd.NewSTPathPredicate(g, 1, 3, zdd.STPathOptions{})
//	pzdd, err := zdd.Construct(g, pred, zdd.WithContext(context.Background()))
//	count := zdd.Count(pzdd) // number of s-t paths
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// component inventory and grounding ledger.
package zdd
