// Command zddgen builds a small demo graph with builder, constructs its
// pseudo-ZDD under a chosen predicate, and prints the solution count.
//
// Grounded on the pattern of building a graph via builder and running one
// algorithm end-to-end, adapted into a standalone
// flag-driven CLI in the same spirit as a typical Go command: parse
// flags, build inputs, run, print.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/zdd"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("zddgen: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("zddgen", flag.ContinueOnError)
	shape := fs.String("shape", "cycle", "demo graph shape: path, cycle, complete")
	n := fs.Int("n", 4, "number of vertices")
	predicate := fs.String("predicate", "stpath", "predicate: stpath, hamiltonian, hamiltonian-cycle")
	s := fs.Int("s", 1, "source vertex (stpath/hamiltonian predicates)")
	t := fs.Int("t", 0, "target vertex (stpath/hamiltonian predicates); defaults to n")
	workers := fs.Int("workers", 1, "level-expansion worker count")
	verbose := fs.Bool("verbose", false, "print per-level progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *t == 0 {
		*t = *n
	}

	cg, err := buildDemoGraph(*shape, *n)
	if err != nil {
		return fmt.Errorf("build demo graph: %w", err)
	}

	edgeOrder := make([]string, 0, cg.EdgeCount())
	for _, e := range cg.Edges() {
		edgeOrder = append(edgeOrder, e.ID)
	}

	g, idOf, _, err := zdd.FromCoreGraph(cg, edgeOrder)
	if err != nil {
		return fmt.Errorf("adapt graph: %w", err)
	}

	pred, err := buildPredicate(*predicate, g, idOf, *s, *t)
	if err != nil {
		return fmt.Errorf("build predicate: %w", err)
	}

	opts := []zdd.Option{zdd.WithContext(context.Background()), zdd.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, zdd.WithVerbose(true), zdd.WithOnLevelDone(func(level, liveNodes, internSize int) {
			fmt.Printf("level %d: %d live nodes (%d interned)\n", level, liveNodes, internSize)
		}))
	}

	pzdd, err := zdd.Construct(g, pred, opts...)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}

	count := zdd.Count(pzdd)
	fmt.Printf("solutions: %s\n", count.String())

	return nil
}

func buildDemoGraph(shape string, n int) (*core.Graph, error) {
	var cons builder.Constructor
	switch shape {
	case "path":
		cons = builder.Path(n)
	case "cycle":
		cons = builder.Cycle(n)
	case "complete":
		cons = builder.Complete(n)
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}

	return builder.BuildGraph(nil, nil, cons)
}

func buildPredicate(name string, g *zdd.Graph, idOf map[string]int, s, t int) (zdd.Predicate, error) {
	switch name {
	case "stpath":
		return zdd.NewSTPathPredicate(g, s, t, zdd.STPathOptions{})
	case "hamiltonian":
		return zdd.NewSTPathPredicate(g, s, t, zdd.STPathOptions{Hamiltonian: true})
	case "hamiltonian-cycle":
		return zdd.NewSTPathPredicate(g, s, t, zdd.STPathOptions{Hamiltonian: true, Cycle: true})
	default:
		return nil, fmt.Errorf("unknown predicate %q", name)
	}
}
