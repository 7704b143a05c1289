// Copyright 2023 The Sortlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times sorting routines over batches of random sequences of
// growing length and writes a human-readable report.
//
// Sorting is effectful: the in-place variant leaves its input sorted, so a
// routine is run exactly once per generated sequence. Rerunning it on the
// same data would time the already-sorted case instead.
package bench

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sortlab/divide/constraints"
	"github.com/sortlab/divide/quicksort"
)

// An Algorithm couples a display name with a sorting routine. The routine is
// invoked for its effect only; whether it mutates xs or returns a fresh
// slice does not matter to the harness.
type Algorithm[E constraints.Ordered] struct {
	Name string
	Sort func(xs []E)
}

// A Generator produces batches of independent random sequences.
type Generator[E constraints.Ordered] struct {
	Name     string
	Generate func(count, length int) [][]E
}

// Config holds the harness parameters. The zero value selects the defaults:
// 1000 sequences per bucket, lengths 2^0 through 2^9, no logging.
type Config struct {
	Count          int // sequences per length bucket
	MinExp, MaxExp int // lengths run from 2^MinExp to 2^MaxExp
	Log            *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Count == 0 {
		c.Count = 1000
	}
	if c.MaxExp == 0 {
		c.MaxExp = 9
	}
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	return c
}

// Run times algo over batches produced by gen and writes one report to w:
// a header naming the algorithm and the generator, then one line per length
// bucket with the nominal length and the elapsed wall-clock seconds for the
// whole batch.
func Run[E constraints.Ordered](w io.Writer, algo Algorithm[E], gen Generator[E], cfg Config) error {
	cfg = cfg.withDefaults()
	if _, err := fmt.Fprintf(w, "Algorithm: %s, Random generator: %s\n", algo.Name, gen.Name); err != nil {
		return err
	}
	for exp := cfg.MinExp; exp <= cfg.MaxExp; exp++ {
		length := 1 << exp
		batch := gen.Generate(cfg.Count, length)
		cfg.Log.Debug("generated batch",
			zap.String("algorithm", algo.Name),
			zap.String("generator", gen.Name),
			zap.Int("count", cfg.Count),
			zap.Int("length", length))

		start := time.Now()
		for _, xs := range batch {
			algo.Sort(xs)
		}
		elapsed := time.Since(start)

		if _, err := fmt.Fprintf(w, "length: %4d\ttime: %.7f s\n", length, elapsed.Seconds()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Lists returns a generator of independently allocated random int slices
// with elements drawn uniformly from [0, max].
func Lists(r *rand.Rand, max int) Generator[int] {
	return Generator[int]{
		Name: "lists",
		Generate: func(count, length int) [][]int {
			out := make([][]int, count)
			for i := range out {
				xs := make([]int, length)
				for j := range xs {
					xs[j] = r.Intn(max + 1)
				}
				out[i] = xs
			}
			return out
		},
	}
}

// Arrays is like Lists but carves the sequences out of one contiguous
// backing buffer, the closest slice analogue of a packed array
// representation. The windows are full-capacity slices, so sorting one
// cannot spill into its neighbor.
func Arrays(r *rand.Rand, max int) Generator[int] {
	return Generator[int]{
		Name: "arrays",
		Generate: func(count, length int) [][]int {
			buf := make([]int, count*length)
			for i := range buf {
				buf[i] = r.Intn(max + 1)
			}
			out := make([][]int, count)
			for i := range out {
				out[i] = buf[i*length : (i+1)*length : (i+1)*length]
			}
			return out
		},
	}
}

// InPlace wraps the in-place quicksort as an Algorithm.
func InPlace[E constraints.Ordered]() Algorithm[E] {
	return Algorithm[E]{Name: "quicksort.Sort", Sort: quicksort.Sort[E]}
}

// Copying wraps the copying quicksort as an Algorithm. The sorted result is
// discarded; only the work of producing it is timed.
func Copying[E constraints.Ordered]() Algorithm[E] {
	return Algorithm[E]{
		Name: "quicksort.Sorted",
		Sort: func(xs []E) { quicksort.Sorted(xs) },
	}
}

// Reference wraps the standard library sort as the timing baseline.
func Reference() Algorithm[int] {
	return Algorithm[int]{Name: "sort.Ints", Sort: sort.Ints}
}
