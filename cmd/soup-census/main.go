package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"glautomata/internal/life"
	"glautomata/internal/render"
	"glautomata/pkg/core"

	"golang.org/x/sync/errgroup"
)

const (
	outcomeExtinct = "extinct"
	outcomeCyclic  = "cyclic"
	outcomeActive  = "active"
)

type censusOptions struct {
	runs    int
	steps   int
	grid    int
	workers int
	seed    int64
	dumpDir string
}

// sanitize clamps option values the pool cannot run with.
func (o *censusOptions) sanitize() {
	if o.runs < 0 {
		o.runs = 0
	}
	if o.workers < 1 {
		o.workers = 1
	}
}

type runResult struct {
	seed        int64
	outcome     string
	generations int
	period      int
	finalPop    int
	peakPop     int
}

func main() {
	runs := flag.Int("runs", 256, "number of random soups to simulate")
	steps := flag.Int("steps", 1000, "maximum generations per soup")
	gridSize := flag.Int("grid", 64, "board side length in cells")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "base seed for deriving per-soup seeds")
	dump := flag.String("dump", "", "directory for final-board PNGs of still-active soups")
	flag.Parse()

	opts := censusOptions{
		runs:    *runs,
		steps:   *steps,
		grid:    *gridSize,
		workers: *workers,
		seed:    *seed,
		dumpDir: *dump,
	}
	opts.sanitize()

	if opts.dumpDir != "" {
		if err := os.MkdirAll(opts.dumpDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Censusing %d soups (%dx%d board, up to %d steps, %d workers)\n",
		opts.runs, opts.grid, opts.grid, opts.steps, opts.workers)

	start := time.Now()
	all, err := runCensus(opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	counts := map[string]int{}
	for _, res := range all {
		counts[res.outcome]++
	}
	sort.Slice(all, func(i, j int) bool { return all[i].generations > all[j].generations })

	fmt.Printf("\n%d extinct, %d settled into a cycle, %d still active after %d steps (elapsed %s)\n",
		counts[outcomeExtinct], counts[outcomeCyclic], counts[outcomeActive], opts.steps, elapsed.Round(time.Millisecond))

	fmt.Printf("\nTop 5 longest-lived soups:\n")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d outcome=%s generations=%d period=%d pop=%d peak=%d\n",
			i+1, res.seed, res.outcome, res.generations, res.period, res.finalPop, res.peakPop)
	}
}

// runCensus simulates opts.runs random soups across a worker pool and
// returns one result per soup, in completion order.
func runCensus(opts censusOptions) ([]runResult, error) {
	opts.sanitize()

	seeds := make([]int64, opts.runs)
	rng := core.NewRNG(opts.seed)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	jobs := make(chan int64)
	results := make(chan runResult)
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer close(jobs)
		for _, s := range seeds {
			select {
			case jobs <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < opts.workers; i++ {
		g.Go(func() error {
			for s := range jobs {
				res, err := runSoup(s, opts.grid, opts.steps, opts.dumpDir)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	return all, g.Wait()
}

// runSoup simulates one random soup until it dies out, repeats a previous
// board, or exhausts the step budget. Repeats are spotted by fingerprint, so
// a hash collision can misreport a cycle; for census purposes that is fine.
func runSoup(seed int64, size, maxSteps int, dumpDir string) (runResult, error) {
	grid := life.New(size)
	grid.Reset(seed)

	res := runResult{seed: seed, outcome: outcomeActive, finalPop: grid.Population()}
	res.peakPop = res.finalPop
	seen := map[uint64]int{grid.Fingerprint(): 0}

	for gen := 1; gen <= maxSteps; gen++ {
		grid.Step()
		res.generations = gen
		res.finalPop = grid.Population()
		if res.finalPop > res.peakPop {
			res.peakPop = res.finalPop
		}
		if res.finalPop == 0 {
			res.outcome = outcomeExtinct
			break
		}
		fp := grid.Fingerprint()
		if first, ok := seen[fp]; ok {
			res.outcome = outcomeCyclic
			res.period = gen - first
			break
		}
		seen[fp] = gen
	}

	if dumpDir != "" && res.outcome == outcomeActive {
		path := filepath.Join(dumpDir, fmt.Sprintf("census-%d.png", res.seed))
		if err := render.SavePNG(path, grid.Cells(), size); err != nil {
			return res, err
		}
	}
	return res, nil
}
