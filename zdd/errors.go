// errors.go — sentinel errors for the zdd package.
//
// Error policy mirrors core/types.go and builder/errors.go:
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%w: ...", ErrX, ...).
//
// Two classes, per spec.md §7:
//   - Configuration errors: caller's fault, surfaced before construction
//     starts (ErrNilGraph, ErrEmptyEdgeList, ErrInvalidEdgeOrder,
//     ErrUnknownPredicate, ErrEndpointNotFound, ErrInconsistentParams,
//     ErrUnsupportedCombination).
//   - Resource errors: surfaced mid-construction, recoverable
//     (ErrInternBudgetExceeded).
//
// Predicate hooks themselves never fail: they return the three-valued
// {Live, Zero, One} verdict (see predicate.go). A violated internal
// invariant (e.g. a mate referencing a vertex outside the frontier) is a
// bug, not a caller error, and is reported via panic in asserts.go.
package zdd

import "errors"

// Configuration errors (caller's fault; reported before construction).
var (
	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = errors.New("zdd: graph is nil")

	// ErrEmptyEdgeList indicates a Graph was constructed with zero edges.
	ErrEmptyEdgeList = errors.New("zdd: edge list is empty")

	// ErrInvalidVertex indicates a vertex id outside [1, N] was referenced.
	ErrInvalidVertex = errors.New("zdd: vertex id out of range")

	// ErrInvalidEdgeOrder indicates a permutation that is not a bijection
	// on [0, M) was supplied to Graph.Permute.
	ErrInvalidEdgeOrder = errors.New("zdd: invalid edge order permutation")

	// ErrUnknownPredicate indicates an unrecognized PredicateKind selector.
	ErrUnknownPredicate = errors.New("zdd: unknown predicate")

	// ErrEndpointNotFound indicates an STPath/Hamiltonian endpoint (s or t)
	// is not a vertex of the graph.
	ErrEndpointNotFound = errors.New("zdd: path endpoint not found in graph")

	// ErrInconsistentParams indicates predicate parameters are mutually
	// inconsistent or reference non-existent vertices (e.g. FGeneral's P/S
	// pairs, or a Topology value outside {TopologyCycleOK, TopologyCycleForbidden}).
	ErrInconsistentParams = errors.New("zdd: inconsistent predicate parameters")

	// ErrUnsupportedCombination indicates a combination of options that
	// is not supported: NewSTPathPredicate returns it when
	// STPathOptions.Cycle is set without STPathOptions.Hamiltonian.
	ErrUnsupportedCombination = errors.New("zdd: unsupported option combination")
)

// Resource errors (surfaced during construction; recoverable).
var (
	// ErrInternBudgetExceeded indicates the per-level interning table grew
	// past Options.InternBudgetBytes. Construction halts and returns this
	// error; the caller may retry with a larger budget or a different edge
	// order (smaller frontier).
	ErrInternBudgetExceeded = errors.New("zdd: intern table memory budget exceeded")
)
