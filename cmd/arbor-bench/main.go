// arbor-bench is a benchmark and stress test for the arbor library.
// It builds large trees from shuffled and sorted key sequences and
// measures insert, lookup, traversal, and removal throughput.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/phroun/arbor"
)

// BenchResult describes one timed benchmark step.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
}

func main() {
	app := &cli.App{
		Name:  "arbor-bench",
		Usage: "benchmark and stress test for the arbor tree",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "nodes",
				Usage: "number of nodes to build the tree from",
				Value: 1 << 20,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for key generation",
				Value: 42,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	nodes := cctx.Int("nodes")
	faker := gofakeit.New(cctx.Int64("seed"))

	fmt.Println("Arbor Benchmark and Stress Test")
	fmt.Println("================================")
	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	keys := make([]int, nodes)
	for i := range keys {
		keys[i] = i
	}
	faker.ShuffleInts(keys)

	var results []BenchResult

	tree := arbor.New[int, int]()
	results = append(results, timed("insert shuffled keys", nodes, func() {
		for i, k := range keys {
			if err := tree.Insert(k, i); err != nil {
				panic(err)
			}
		}
	}))

	results = append(results, timed("find every key", nodes, func() {
		for _, k := range keys {
			if _, err := tree.Find(k); err != nil {
				panic(err)
			}
		}
	}))

	results = append(results, timed("inorder traversal", nodes, func() {
		count := 0
		for range tree.Inorder() {
			count++
		}
		if count != nodes {
			panic(fmt.Sprintf("inorder visited %d of %d nodes", count, nodes))
		}
	}))

	results = append(results, timed("validity check", 1, func() {
		if !tree.IsValid() {
			panic("tree failed validity check")
		}
	}))

	results = append(results, timed("remove every key", nodes, func() {
		for _, k := range keys {
			if err := tree.Remove(k); err != nil {
				panic(err)
			}
		}
	}))

	// Sorted insertion degenerates the tree into a chain; keep it small
	// enough that the linear descents stay affordable.
	chain := min(nodes, 1<<14)
	worst := arbor.New[int, int]()
	results = append(results, timed(fmt.Sprintf("insert %d sorted keys (worst case)", chain), chain, func() {
		for i := range chain {
			if err := worst.Insert(i, i); err != nil {
				panic(err)
			}
		}
	}))

	fmt.Println()
	fmt.Println("Results:")
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

func timed(name string, ops int, fn func()) BenchResult {
	start := time.Now()
	fn()
	r := BenchResult{Name: name, Duration: time.Since(start), Ops: ops}
	fmt.Println(r)
	return r
}
