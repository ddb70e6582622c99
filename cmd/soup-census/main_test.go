package main

import (
	"sort"
	"testing"
)

func TestSanitizeClampsOptions(t *testing.T) {
	opts := censusOptions{runs: -1, workers: 0}
	opts.sanitize()
	if opts.runs != 0 {
		t.Fatalf("runs = %d, want 0", opts.runs)
	}
	if opts.workers != 1 {
		t.Fatalf("workers = %d, want 1", opts.workers)
	}
}

func TestRunCensusZeroWorkers(t *testing.T) {
	all, err := runCensus(censusOptions{runs: 2, steps: 8, grid: 8, workers: 0, seed: 1})
	if err != nil {
		t.Fatalf("runCensus: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("results = %d, want 2", len(all))
	}
	for _, res := range all {
		switch res.outcome {
		case outcomeExtinct, outcomeCyclic, outcomeActive:
		default:
			t.Fatalf("unknown outcome %q", res.outcome)
		}
		if res.generations < 0 || res.generations > 8 {
			t.Fatalf("generations = %d, want within step budget", res.generations)
		}
	}
}

func TestRunCensusNegativeRuns(t *testing.T) {
	all, err := runCensus(censusOptions{runs: -1, steps: 8, grid: 8, workers: 2, seed: 1})
	if err != nil {
		t.Fatalf("runCensus: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("results = %d, want 0", len(all))
	}
}

func TestRunCensusDeterministic(t *testing.T) {
	opts := censusOptions{runs: 4, steps: 16, grid: 8, workers: 2, seed: 99}
	a, err := runCensus(opts)
	if err != nil {
		t.Fatalf("first census: %v", err)
	}
	b, err := runCensus(opts)
	if err != nil {
		t.Fatalf("second census: %v", err)
	}
	bySeed := func(rs []runResult) {
		sort.Slice(rs, func(i, j int) bool { return rs[i].seed < rs[j].seed })
	}
	bySeed(a)
	bySeed(b)
	if len(a) != len(b) {
		t.Fatalf("result counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
