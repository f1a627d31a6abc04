// options.go — functional options for Construct, mirroring bfs.Option /
// flow.FlowOptions: a resolved Options struct, a DefaultOptions()
// constructor, and WithX functions that mutate it.
package zdd

import "context"

// Options tunes Construct's behavior: cancellation, resource bounds,
// intra-level parallelism, and progress observation.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per edge level,
	// matching spec.md §5 ("no suspension points beyond pool waits").
	Ctx context.Context

	// Workers, if > 1, shards each level's live-node expansion across that
	// many goroutines, using a striped intern table (see intern.go). A
	// value of 0 or 1 runs the sequential, single-threaded driver.
	Workers int

	// InternBudgetBytes caps the total packed-key bytes resident in the
	// per-level intern table at any one time. 0 means unbounded. Exceeding
	// the budget returns ErrInternBudgetExceeded rather than panicking or
	// growing unbounded.
	InternBudgetBytes int64

	// Verbose prints one line per completed level via fmt.Printf (level
	// index, live node count, interned key count), matching
	// flow.FlowOptions.Verbose's per-augmentation print in Dinic.
	Verbose bool

	// OnLevelDone, if non-nil, is called after each edge level finishes
	// expanding, with the level index, the number of live nodes produced,
	// and the number of distinct packed keys interned at that level.
	OnLevelDone func(level, liveNodes, internSize int)
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - sequential (single-threaded) expansion
//   - no intern budget (unbounded)
//   - no verbosity, no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Workers:           1,
		InternBudgetBytes: 0,
		Verbose:           false,
		OnLevelDone:       func(int, int, int) {},
	}
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers enables sharded intra-level expansion across n goroutines.
// n <= 1 forces sequential expansion.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithInternBudget caps per-level intern table memory in bytes. 0 disables
// the cap.
func WithInternBudget(bytes int64) Option {
	return func(o *Options) {
		if bytes >= 0 {
			o.InternBudgetBytes = bytes
		}
	}
}

// WithVerbose toggles progress printing.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithOnLevelDone registers a per-level progress callback.
func WithOnLevelDone(fn func(level, liveNodes, internSize int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevelDone = fn
		}
	}
}

// resolveOptions applies opts on top of DefaultOptions(), exactly like
// bfs.BFS's "o := DefaultOptions(); for _, opt := range opts { opt(&o) }".
func resolveOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
