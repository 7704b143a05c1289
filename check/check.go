// Copyright 2023 The Sortlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check validates the quicksort variants against the standard
// library sort on randomized inputs, in the spirit of quickcheck-style
// property testing. A failed check surfaces the offending input; it is never
// retried, because sorting is deterministic and a mismatch means a logic
// bug.
package check

import (
	"math/rand"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"

	"github.com/sortlab/divide/constraints"
	"github.com/sortlab/divide/quicksort"
)

const (
	// Rounds is the number of random inputs each variant is checked
	// against, per element type.
	Rounds = 200

	maxLen      = 128
	maxStrLen   = 12
	intSpread   = 1 << 10
	alphabetLen = 'z' - 'a' + 1
)

// A Variant is one sorting routine under check. Sort returns the sorted
// sequence; copying variants must leave their argument untouched, in-place
// variants mutate it and return it.
type Variant[E constraints.Ordered] struct {
	Name    string
	Sort    func(xs []E) []E
	Copying bool
}

// Variants returns every sorting routine this module ships, wrapped for
// checking.
func Variants[E constraints.Ordered]() []Variant[E] {
	return []Variant[E]{
		{
			Name:    "quicksort.Sorted",
			Sort:    func(xs []E) []E { return quicksort.Sorted(xs) },
			Copying: true,
		},
		{
			Name: "quicksort.Sort",
			Sort: func(xs []E) []E { quicksort.Sort(xs); return xs },
		},
		{
			Name: "quicksort.SortIterative",
			Sort: func(xs []E) []E { quicksort.SortIterative(xs); return xs },
		},
	}
}

// One runs a single variant on a single input and compares the result
// element by element against the reference sort. The returned error carries
// the input that provoked the mismatch.
func One[E constraints.Ordered](v Variant[E], input []E) error {
	arg := append([]E(nil), input...)
	got := v.Sort(arg)

	if v.Copying {
		if diff := cmp.Diff(input, arg, cmpopts.EquateEmpty()); diff != "" {
			return xerrors.Errorf("%s mutated its input %v (-before +after):\n%s", v.Name, input, diff)
		}
	}

	want := append([]E(nil), input...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		return xerrors.Errorf("%s(%v) = %v, want %v (-want +got):\n%s", v.Name, input, got, want, diff)
	}
	return nil
}

// Run draws random integer and string inputs from the given seed and checks
// every variant against each of them. It returns the first failure, wrapped
// with the variant and round that produced it, or nil if every check passed.
func Run(seed int64) error {
	r := rand.New(rand.NewSource(seed))
	for round := 0; round < Rounds; round++ {
		n := r.Intn(maxLen)
		ints := randInts(r, n)
		strs := randStrings(r, n)
		for _, v := range Variants[int]() {
			if err := One(v, ints); err != nil {
				return xerrors.Errorf("round %d (seed %d): %w", round, seed, err)
			}
		}
		for _, v := range Variants[string]() {
			if err := One(v, strs); err != nil {
				return xerrors.Errorf("round %d (seed %d): %w", round, seed, err)
			}
		}
	}
	return nil
}

// randInts draws n integers from (-intSpread, intSpread). Negative values
// and the narrow range guarantee duplicates show up at realistic lengths.
func randInts(r *rand.Rand, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(2*intSpread) - intSpread
	}
	return xs
}

func randStrings(r *rand.Rand, n int) []string {
	xs := make([]string, n)
	for i := range xs {
		b := make([]byte, r.Intn(maxStrLen))
		for j := range b {
			b[j] = byte('a' + r.Intn(alphabetLen))
		}
		xs[i] = string(b)
	}
	return xs
}
