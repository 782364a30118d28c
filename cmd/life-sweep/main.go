package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
)

type seedResult struct {
	seed        int64
	initialFrac float64
	population  int
}

func main() {
	size := flag.Int("size", board.DefaultSize, "cells along each side of the board")
	seeds := flag.Int("seeds", 32, "number of boards to simulate")
	startSeed := flag.Int64("start-seed", 1, "seed of the first board")
	steps := flag.Int("steps", 200, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *size <= 0 || *seeds <= 0 || *steps < 0 || *workers <= 0 {
		log.Fatalf("size, seeds and workers must be positive and steps non-negative")
	}

	fmt.Printf("Simulating %d boards of %dx%d for %d generations (%d workers)\n", *seeds, *size, *size, *steps, *workers)

	results := make([]seedResult, *seeds)
	var g errgroup.Group
	g.SetLimit(*workers)
	for i := range results {
		seed := *startSeed + int64(i)
		g.Go(func() error {
			results[i] = runSeed(*size, seed, *steps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	total := 0.0
	for _, r := range results {
		total += r.initialFrac
		fmt.Printf("seed=%d initial=%.3f population=%d\n", r.seed, r.initialFrac, r.population)
	}
	fmt.Printf("mean initial alive fraction: %.4f\n", total/float64(len(results)))
}

func runSeed(size int, seed int64, steps int) seedResult {
	b := board.New(size)
	b.SeedRandom(core.NewRNG(seed))
	cells := size * size
	res := seedResult{seed: seed, initialFrac: float64(b.Population()) / float64(cells)}
	for i := 0; i < steps; i++ {
		b.Step()
	}
	res.population = b.Population()
	return res
}
