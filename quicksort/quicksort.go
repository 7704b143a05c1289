// Copyright 2023 The Sortlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quicksort implements two variants of the classic divide-and-conquer
// sorting algorithm over slices of any ordered element type.
//
// Sorted allocates: it partitions the input into fresh less-or-equal and
// greater-than slices and recombines them, leaving its argument untouched.
// Sort rearranges the elements of its argument in place using pairwise swaps
// and a constant number of index variables. The two variants trade allocation
// for mutation; apart from that their results are identical, including on
// inputs with duplicate keys, because both group elements equal to the pivot
// on the less-or-equal side.
//
// Neither variant is a production sort. Both pick fixed pivots (the first
// element for Sorted, the last for Sort), so an already-sorted or
// reverse-sorted input degrades them to quadratic time. The standard library
// sort package is the right tool when performance matters; this package
// exists to compare the space behavior of the two classic formulations.
package quicksort

import "github.com/sortlab/divide/constraints"

// partition splits xs around its first element. It returns the elements of
// xs[1:] that are less than or equal to the pivot, the pivot itself, and the
// elements strictly greater than the pivot. Relative order is preserved
// within each group. The two groups are freshly allocated; xs is not
// modified. xs must be non-empty.
func partition[E constraints.Ordered](xs []E) (le []E, pivot E, gt []E) {
	pivot = xs[0]
	for _, x := range xs[1:] {
		if x <= pivot {
			le = append(le, x)
		} else {
			gt = append(gt, x)
		}
	}
	return le, pivot, gt
}

// Sorted returns a new slice with the elements of xs in non-descending
// order. It does not modify xs. An empty input is returned as is.
//
// Sorted allocates O(n) memory per recursion level for the partition copies,
// O(n log n) in total on average inputs.
func Sorted[E constraints.Ordered](xs []E) []E {
	if len(xs) == 0 {
		return xs
	}
	le, pivot, gt := partition(xs)
	out := Sorted(le)
	out = append(out, pivot)
	return append(out, Sorted(gt)...)
}

// Sort sorts xs in place in non-descending order using constant auxiliary
// space. The caller must not access xs concurrently during the call.
func Sort[E constraints.Ordered](xs []E) {
	// An empty slice gives hi = -1 < lo = 0, the terminal state of sortRange.
	sortRange(xs, 0, len(xs)-1)
}

// sortRange sorts xs[lo:hi+1] in place. Bounds are inclusive; a range with
// lo >= hi holds at most one element and is already sorted.
func sortRange[E constraints.Ordered](xs []E, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partitionRange(xs, lo, hi)
	sortRange(xs, lo, p-1)
	sortRange(xs, p+1, hi)
}

// partitionRange rearranges xs[lo:hi+1] around the pivot xs[hi] using
// Lomuto's scheme and returns the pivot's final index. Afterwards every
// element left of that index is less than or equal to the pivot and every
// element right of it is strictly greater. Only pairwise swaps and two index
// variables are used.
func partitionRange[E constraints.Ordered](xs []E, lo, hi int) int {
	pivot := xs[hi]

	// le marks the last confirmed position of a <=-element.
	le := lo - 1
	for i := lo; i < hi; i++ {
		if xs[i] <= pivot {
			le++
			xs[le], xs[i] = xs[i], xs[le]
		}
	}

	// The pivot is <= itself, so it lands one past the boundary.
	le++
	xs[le], xs[hi] = xs[hi], xs[le]
	return le
}

// SortIterative is Sort with the recursion replaced by an explicit work list
// of pending ranges. The call-stack depth of Sort grows linearly on
// adversarial inputs such as already-sorted data; this variant keeps the
// pending ranges on the heap instead. The resulting order is identical.
func SortIterative[E constraints.Ordered](xs []E) {
	type span struct{ lo, hi int }
	work := []span{{0, len(xs) - 1}}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		if s.lo >= s.hi {
			continue
		}
		p := partitionRange(xs, s.lo, s.hi)
		work = append(work, span{s.lo, p - 1}, span{p + 1, s.hi})
	}
}

// IsSorted reports whether xs is in non-descending order.
func IsSorted[E constraints.Ordered](xs []E) bool {
	for i := len(xs) - 1; i > 0; i-- {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
