// count.go — bottom-up solution counting over a finished PseudoZDD.
//
// Grounded on dfs/topological.go's bottom-up DAG walk (visit children
// before accumulating a node's own value), generalized per spec.md §6 to
// sum child counts instead of producing a topological order, and using
// math/big.Int throughout since the solution count of a dense graph's
// pseudo-ZDD routinely exceeds int64 (spec.md §6: "must not silently
// overflow").
package zdd

import "math/big"

// Count returns the number of distinct solutions encoded by p: the number
// of root-to-Top paths, each counted once regardless of how many interior
// nodes it passes through (spec.md §6).
func Count(p *PseudoZDD) *big.Int {
	memo := make(map[NodeID]*big.Int, len(p.Nodes))

	return countNode(p, p.Root, memo)
}

func countNode(p *PseudoZDD, id NodeID, memo map[NodeID]*big.Int) *big.Int {
	switch id {
	case Bot:
		return big.NewInt(0)
	case Top:
		return big.NewInt(1)
	}
	if c, ok := memo[id]; ok {
		return c
	}

	n, ok := p.Nodes[id]
	if !ok {
		panicInvariant("count: dangling NodeID %d not present in PseudoZDD.Nodes", id)
	}

	lo := countNode(p, n.Lo, memo)
	hi := countNode(p, n.Hi, memo)
	sum := new(big.Int).Add(lo, hi)
	memo[id] = sum

	return sum
}
