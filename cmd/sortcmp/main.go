// Copyright 2023 The Sortlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The sortcmp command checks the two quicksort variants against the
// standard library sort on randomized inputs and then prints a timing
// report comparing all three across input sizes.
//
// Usage: sortcmp
//
// It takes no flags. Checks run first; the timing report only makes sense
// for correct implementations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sortlab/divide/bench"
	"github.com/sortlab/divide/check"
)

// The contiguous-buffer generator is the packed-array counterpart of the
// default list path. Its numbers add little to the comparison, so it stays
// off unless someone flips this constant.
const benchArrays = false

const maxValue = 1 << 10

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sortcmp:", err)
		os.Exit(1)
	}
	defer log.Sync()

	seed := time.Now().UnixNano()
	log.Info("running correctness checks",
		zap.Int64("seed", seed),
		zap.Int("rounds", check.Rounds))
	if err := check.Run(seed); err != nil {
		log.Fatal("correctness check failed", zap.Error(err))
	}
	log.Info("correctness checks passed")

	r := rand.New(rand.NewSource(seed))
	generators := []bench.Generator[int]{bench.Lists(r, maxValue)}
	if benchArrays {
		generators = append(generators, bench.Arrays(r, maxValue))
	}

	cfg := bench.Config{Log: log}
	for _, gen := range generators {
		algorithms := []bench.Algorithm[int]{
			bench.InPlace[int](),
			bench.Copying[int](),
			bench.Reference(),
		}
		for _, algo := range algorithms {
			if err := bench.Run(os.Stdout, algo, gen, cfg); err != nil {
				log.Fatal("benchmark report failed", zap.Error(err))
			}
		}
	}
}
