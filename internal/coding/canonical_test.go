// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/huffio/internal/testutil"
)

func TestCanonicalScenario(t *testing.T) {
	// Frequencies {65:4, 256:1} must normalize to lengths {65:1, 256:1}
	// and the canonical codewords {65:0, 256:1}.
	ft := NewFrequencyTable(257, 0)
	for i := 0; i < 4; i++ {
		ft.Increment(65)
	}
	ft.Increment(256)

	tree, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code, err := NewCode(tree, 257)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for sym := 0; sym < 257; sym++ {
		want := 0
		if sym == 65 || sym == 256 {
			want = 1
		}
		if got := code.Length(sym); got != want {
			t.Errorf("Length(%d) = %d, want %d", sym, got, want)
		}
	}

	ctree, err := code.Tree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	codes := ctree.Codewords(257)
	if !bytes.Equal(codes[65], []byte{0}) {
		t.Errorf("codes[65] = %v, want [0]", codes[65])
	}
	if !bytes.Equal(codes[256], []byte{1}) {
		t.Errorf("codes[256] = %v, want [1]", codes[256])
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	// Normalizing the canonical tree again must reproduce the same
	// length table, regardless of how the original tree was shaped.
	rand := testutil.NewRand(1)
	ft := NewFrequencyTable(257, 0)
	for _, b := range rand.Bytes(1 << 14) {
		ft.Increment(int(b))
	}
	ft.Increment(256)

	tree, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code1, err := NewCode(tree, 257)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctree, err := code1.Tree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code2, err := NewCode(ctree, 257)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(code1.lens, code2.lens); diff != "" {
		t.Errorf("length table mismatch (-derived +renormalized):\n%s", diff)
	}
}

func TestPrefixFree(t *testing.T) {
	rand := testutil.NewRand(2)
	ft := NewFrequencyTable(257, 0)
	for _, b := range rand.Bytes(1 << 12) {
		ft.Increment(int(b))
	}
	ft.Increment(256)

	tree, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code, err := NewCode(tree, 257)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctree, err := code.Tree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codes := ctree.Codewords(257)
	for i, ci := range codes {
		for j, cj := range codes {
			if i == j || ci == nil || cj == nil {
				continue
			}
			if len(ci) <= len(cj) && bytes.Equal(ci, cj[:len(ci)]) {
				t.Fatalf("codeword of %d is a prefix of codeword of %d", i, j)
			}
		}
	}
}

func TestInvalidLengths(t *testing.T) {
	vectors := []struct {
		lens  []int
		valid bool
	}{
		{[]int{1, 1}, true},
		{[]int{1, 2, 2}, true},
		{[]int{2, 2, 2, 2}, true},
		{[]int{0, 1, 0, 2, 2}, true},
		{[]int{2, 0, 1, 3, 3}, true},

		{nil, false},             // Nothing to decode
		{[]int{0, 0, 0}, false},  // Nothing to decode
		{[]int{1}, false},        // Underfull
		{[]int{1, 2}, false},     // Underfull
		{[]int{3}, false},        // Underfull
		{[]int{1, 1, 1}, false},  // Overfull
		{[]int{1, 2, 2, 2}, false}, // Overfull
	}

	for i, v := range vectors {
		code, err := NewCodeFromLengths(v.lens)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		_, err = code.Tree()
		if v.valid && err != nil {
			t.Errorf("test %d, Tree() = %v, want nil", i, err)
		}
		if !v.valid && err != ErrInvalidLengths {
			t.Errorf("test %d, Tree() = %v, want %v", i, err, ErrInvalidLengths)
		}
	}
}

func TestCodeLengthLimit(t *testing.T) {
	if _, err := NewCodeFromLengths([]int{256, 1}); err != ErrCodeLength {
		t.Errorf("NewCodeFromLengths error mismatch, got %v, want %v", err, ErrCodeLength)
	}
	if _, err := NewCodeFromLengths([]int{-1, 1}); err != ErrCodeLength {
		t.Errorf("NewCodeFromLengths error mismatch, got %v, want %v", err, ErrCodeLength)
	}
	if _, err := NewCodeFromLengths([]int{255, 1}); err == ErrCodeLength {
		t.Errorf("NewCodeFromLengths rejected a length of 255")
	}
}
