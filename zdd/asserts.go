// asserts.go — internal invariant checks that panic rather than return an
// error, for conditions that indicate a bug in this package (or in a
// hand-written Predicate) rather than a bad caller input.
//
// Grounded on core's internal invariant checks (core guards its adjacency
// maps the same way: a public API returns an error for bad input, but an
// internal consistency violation panics since it can only mean a broken
// invariant, not user data).
package zdd

import "fmt"

// panicInvariant panics with a formatted message. Reserved for conditions
// that can only happen if this package (or a Predicate implementation)
// violated its own invariants — e.g. a mate referencing a vertex outside
// the current frontier, or a dangling NodeID in a PseudoZDD.
func panicInvariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("zdd: internal invariant violated: "+format, args...))
}
