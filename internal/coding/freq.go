// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

import "container/heap"

// FrequencyTable tracks the number of occurrences of each symbol in a
// fixed alphabet. The counters are 64 bits wide, so they cannot overflow
// for any input this library can be fed. The zero value is not usable;
// use NewFrequencyTable.
type FrequencyTable struct {
	freqs []uint64 // Occurrence count per symbol
	init  uint64   // Count that Reset restores for every symbol
}

// NewFrequencyTable creates a table over an alphabet of numSymbols
// symbols, with every counter set to init. Static coding starts from zero
// counts; the adaptive model uses init == 1 so that no symbol is
// unencodable on its first occurrence.
func NewFrequencyTable(numSymbols int, init uint64) *FrequencyTable {
	if numSymbols < 2 {
		panic(errInvalidSymbol)
	}
	ft := &FrequencyTable{freqs: make([]uint64, numSymbols), init: init}
	ft.Reset()
	return ft
}

// NumSymbols reports the size of the table's alphabet.
func (ft *FrequencyTable) NumSymbols() int { return len(ft.freqs) }

// Freq reports the current count for the given symbol.
func (ft *FrequencyTable) Freq(sym int) uint64 { return ft.freqs[sym] }

// Increment adds one occurrence of the given symbol.
// It panics if the symbol lies outside the table's alphabet.
func (ft *FrequencyTable) Increment(sym int) {
	if sym < 0 || sym >= len(ft.freqs) {
		panic(errInvalidSymbol)
	}
	ft.freqs[sym]++
}

// Reset restores every counter to the table's initial value.
// The table's alphabet is unchanged.
func (ft *FrequencyTable) Reset() {
	for i := range ft.freqs {
		ft.freqs[i] = ft.init
	}
}

// BuildTree constructs an optimal prefix-code tree for the current counts
// using the greedy Huffman merge. Ties in weight are broken by insertion
// sequence: leaves enter in ascending symbol order and merged subtrees in
// creation order, so extraction order is total and repeated calls on
// identical tables yield identical trees.
//
// If only one symbol has a nonzero count, the tree is padded with the
// lowest zero-count symbol so that every codeword has at least one bit.
// It returns ErrEmpty if no symbol has a nonzero count.
func (ft *FrequencyTable) BuildTree() (*CodeTree, error) {
	t := &CodeTree{nodes: make([]treeNode, 0, 2*len(ft.freqs))}
	var h buildHeap
	var seq int32
	push := func(sym int32, w uint64) {
		t.nodes = append(t.nodes, treeNode{sym: sym, left: -1, right: -1})
		heap.Push(&h, buildItem{node: int32(len(t.nodes) - 1), weight: w, seq: seq})
		seq++
	}

	for sym, f := range ft.freqs {
		if f > 0 {
			push(int32(sym), f)
		}
	}
	if len(h) == 0 {
		return nil, ErrEmpty
	}
	for sym := 0; len(h) < 2 && sym < len(ft.freqs); sym++ {
		if ft.freqs[sym] == 0 {
			push(int32(sym), 0)
		}
	}

	for len(h) > 1 {
		a := heap.Pop(&h).(buildItem)
		b := heap.Pop(&h).(buildItem)
		t.nodes = append(t.nodes, treeNode{sym: -1, left: a.node, right: b.node})
		heap.Push(&h, buildItem{
			node:   int32(len(t.nodes) - 1),
			weight: a.weight + b.weight,
			seq:    seq,
		})
		seq++
	}
	t.root = h[0].node
	return t, nil
}

// buildItem is a pending subtree in the greedy merge. The composite
// (weight, seq) ordering keeps extraction deterministic across runs.
type buildItem struct {
	node   int32  // Index of the subtree root in the arena
	weight uint64 // Total frequency of the subtree
	seq    int32  // Insertion sequence number, breaks weight ties
}

type buildHeap []buildItem

func (h buildHeap) Len() int { return len(h) }

func (h buildHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h buildHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *buildHeap) Push(x interface{}) { *h = append(*h, x.(buildItem)) }

func (h *buildHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
