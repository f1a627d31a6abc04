// predicate.go — the pluggable predicate contract and the PredicateKind
// dispatch enum.
//
// Grounded on original_source's class hierarchy (MateFrontier base,
// MateSTPath/MateFGeneral/MateSetCover subclasses), re-architected per
// spec.md §9 as a Go interface implemented by concrete structs, dispatched
// via an enum + switch exactly like tsp.Algorithm / tsp.solve.go's
// SolveWithMatrix.
package zdd

// Verdict is the three-valued result of a predicate hook: Live means "not
// yet decided, keep going"; Zero/One mean the partial assignment is fully
// decided and should link straight to the corresponding terminal.
type Verdict int

const (
	// Live indicates the partial assignment's fate is still undecided.
	Live Verdict = iota
	// Zero indicates the partial assignment can never satisfy the predicate.
	Zero
	// One indicates the partial assignment already satisfies the predicate
	// with no remaining obligations.
	One
)

func (v Verdict) String() string {
	switch v {
	case Live:
		return "Live"
	case Zero:
		return "Zero"
	case One:
		return "One"
	default:
		return "Verdict(?)"
	}
}

// Mate is a predicate-specific, clonable summary of the partial solution
// restricted to the current frontier. Each Predicate implementation
// defines its own concrete Mate type; the driver never inspects its
// internals, only calls Clone (via the Predicate hooks) and Pack.
type Mate interface {
	// Clone returns a deep copy, safe to mutate independently of the original.
	Clone() Mate
}

// Predicate specializes the frontier engine to one graph-family
// constraint. All six hooks below are pure functions of their inputs; Update,
// EnterLevel, and Canonicalize may mutate and return the same Mate value
// they were given (no hidden allocation contract is implied either way).
//
// Driver call order per (level, branch):
//  1. EnterLevel(level, mate)   — once per live node, before either branch
//  2. PreCheck(level, mate, b)  — before Update; may short-circuit to Zero/One
//  3. Update(level, mate, b)    — incorporate edge e_level on branch b
//  4. PostCheck(level, mate)    — after Update, using Leaving(level)
//  5. Canonicalize(level, mate) — only if PostCheck returned Live
//  6. Pack(level, mate)         — only if PostCheck returned Live
type Predicate interface {
	// NewMate returns a freshly initialized mate for the empty root frontier.
	NewMate() Mate

	// EnterLevel initializes the slots of vertices entering the frontier
	// at this level (e.g. mate[v] = v for a fresh isolated vertex). Called
	// once per live node per level, before branch 0 and branch 1 are
	// explored, matching original_source/MateSTPath.cpp's UnpackMate
	// being invoked once per node (child_num == 0 unpacks; child_num == 1
	// reuses the already-unpacked state).
	EnterLevel(level int, mate Mate) Mate

	// PreCheck evaluates before Update. Returning Zero/One short-circuits
	// Update/PostCheck entirely for this branch.
	PreCheck(level int, mate Mate, branch int) Verdict

	// Update incorporates edge e_level into mate for the given branch
	// (0 = exclude, 1 = include).
	Update(level int, mate Mate, branch int) Mate

	// PostCheck evaluates after Update, using the set of vertices leaving
	// the frontier at this level. At the last edge index it must resolve
	// to Zero or One — no node may survive as interior past the last edge.
	PostCheck(level int, mate Mate) Verdict

	// Canonicalize rewrites mate labels so that two partial states with
	// identical future completions pack to the same key. Only called when
	// PostCheck returned Live.
	Canonicalize(level int, mate Mate) Mate

	// Pack serializes the (already canonicalized) mate restricted to the
	// frontier surviving past this level into a byte-exact key for
	// interning. Only called when PostCheck returned Live.
	Pack(level int, mate Mate) []byte
}

// PredicateKind selects which built-in predicate NewPredicate constructs,
// in the same enum-plus-switch-dispatch idiom as tsp.Algorithm.
type PredicateKind int

const (
	// KindSTPath selects the s-t path / Hamiltonian path-or-cycle predicate.
	KindSTPath PredicateKind = iota
	// KindFGeneral selects the degree/component-constrained spanning predicate.
	KindFGeneral
	// KindSetPartition selects the exact-cover (set partition) predicate.
	KindSetPartition
	// KindSetCover selects the (non-exact) set cover predicate.
	KindSetCover
)

func (k PredicateKind) String() string {
	switch k {
	case KindSTPath:
		return "STPath"
	case KindFGeneral:
		return "FGeneral"
	case KindSetPartition:
		return "SetPartition"
	case KindSetCover:
		return "SetCover"
	default:
		return "PredicateKind(?)"
	}
}
