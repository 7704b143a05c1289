// Copyright 2023 The Sortlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345} {
		if err := Run(seed); err != nil {
			t.Errorf("Run(%d): %v", seed, err)
		}
	}
}

// A broken variant must be rejected with an error naming the input.
func TestOneCatchesWrongOrder(t *testing.T) {
	broken := Variant[int]{
		Name: "reverse",
		Sort: func(xs []int) []int {
			for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
				xs[i], xs[j] = xs[j], xs[i]
			}
			return xs
		},
	}
	err := One(broken, []int{1, 2, 3})
	if err == nil {
		t.Fatal("One accepted a reversing sort")
	}
	if !strings.Contains(err.Error(), "[1 2 3]") {
		t.Errorf("error does not name the offending input: %v", err)
	}
}

// A variant declared copying but mutating its argument must be rejected.
func TestOneCatchesMutation(t *testing.T) {
	impostor := Variant[int]{
		Name:    "mutating",
		Copying: true,
		Sort: func(xs []int) []int {
			if len(xs) > 1 {
				xs[0], xs[1] = xs[1], xs[0]
			}
			return append([]int(nil), xs...)
		},
	}
	if err := One(impostor, []int{2, 1}); err == nil {
		t.Fatal("One accepted a mutating copying variant")
	}
}

func TestOneEmptyInput(t *testing.T) {
	for _, v := range Variants[int]() {
		if err := One(v, nil); err != nil {
			t.Errorf("One(%s, nil): %v", v.Name, err)
		}
	}
}

func TestRandStringsBounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, s := range randStrings(r, 500) {
		if len(s) >= maxStrLen {
			t.Fatalf("string %q longer than %d", s, maxStrLen-1)
		}
		for i := 0; i < len(s); i++ {
			if s[i] < 'a' || s[i] > 'z' {
				t.Fatalf("string %q outside a-z", s)
			}
		}
	}
}
