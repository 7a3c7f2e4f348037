// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/huffio/internal/testutil"
)

func TestFrequencyTable(t *testing.T) {
	ft := NewFrequencyTable(257, 0)
	if got := ft.NumSymbols(); got != 257 {
		t.Errorf("NumSymbols() = %d, want 257", got)
	}
	for i := 0; i < 4; i++ {
		ft.Increment(65)
	}
	ft.Increment(256)
	if got := ft.Freq(65); got != 4 {
		t.Errorf("Freq(65) = %d, want 4", got)
	}
	if got := ft.Freq(66); got != 0 {
		t.Errorf("Freq(66) = %d, want 0", got)
	}

	ft.Reset()
	if got := ft.Freq(65); got != 0 {
		t.Errorf("Freq(65) after Reset = %d, want 0", got)
	}

	// A flat table resets back to its uniform prior, not to zero.
	ft = NewFrequencyTable(257, 1)
	ft.Increment(0)
	ft.Reset()
	for sym := 0; sym < ft.NumSymbols(); sym++ {
		if got := ft.Freq(sym); got != 1 {
			t.Fatalf("Freq(%d) after Reset = %d, want 1", sym, got)
		}
	}
}

func TestIncrementRange(t *testing.T) {
	ft := NewFrequencyTable(257, 0)
	for _, sym := range []int{-1, 257, 1 << 20} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Increment(%d) did not panic", sym)
				}
			}()
			ft.Increment(sym)
		}()
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	ft := NewFrequencyTable(257, 0)
	if _, err := ft.BuildTree(); err != ErrEmpty {
		t.Errorf("BuildTree() error mismatch, got %v, want %v", err, ErrEmpty)
	}
}

func TestBuildTreeDegenerate(t *testing.T) {
	// A single nonzero symbol must still get a one-bit codeword; the tree
	// is padded with the lowest zero-count symbol.
	ft := NewFrequencyTable(257, 0)
	for i := 0; i < 4; i++ {
		ft.Increment(65)
	}
	tree, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	codes := tree.Codewords(257)
	if got := len(codes[65]); got != 1 {
		t.Errorf("len(codes[65]) = %d, want 1", got)
	}
	if got := len(codes[0]); got != 1 {
		t.Errorf("len(codes[0]) = %d, want 1", got)
	}
	for sym, cw := range codes {
		if sym != 0 && sym != 65 && cw != nil {
			t.Errorf("codes[%d] = %v, want absent", sym, cw)
		}
	}
}

func TestBuildTreeDeterminism(t *testing.T) {
	rand := testutil.NewRand(0)
	ft := NewFrequencyTable(257, 0)
	for _, b := range rand.Bytes(4096) {
		ft.Increment(int(b))
	}
	ft.Increment(256)

	tree1, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree2, err := ft.BuildTree()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(tree1.Codewords(257), tree2.Codewords(257)); diff != "" {
		t.Errorf("codeword mismatch (-first +second):\n%s", diff)
	}
}
