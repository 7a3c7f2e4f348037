// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

// MaxCodeLen is the longest codeword the stream formats can describe,
// since code lengths are serialized as a single byte each.
const MaxCodeLen = 255

// Code is a canonical Huffman code: a per-symbol table of code lengths
// from which the codeword assignment is fully determined. Any two trees
// built over the same counts normalize to the same Code, which lets the
// decode side reconstruct the tree from the lengths alone, without the
// tree's shape ever being transmitted.
type Code struct {
	lens []int // Code length per symbol; 0 means the symbol is absent
}

// NewCode derives the canonical code of the given tree over an alphabet of
// numSymbols symbols. Symbols absent from the tree get length 0.
// It returns ErrCodeLength if any leaf is deeper than MaxCodeLen.
func NewCode(tree *CodeTree, numSymbols int) (*Code, error) {
	lens := make([]int, numSymbols)
	for sym, cw := range tree.Codewords(numSymbols) {
		if len(cw) > MaxCodeLen {
			return nil, ErrCodeLength
		}
		lens[sym] = len(cw)
	}
	return &Code{lens: lens}, nil
}

// NewCodeFromLengths creates a Code from a raw length table, as read from
// a stream header. The table is validated structurally when the tree is
// reconstructed with Tree.
func NewCodeFromLengths(lens []int) (*Code, error) {
	for _, n := range lens {
		if n < 0 || n > MaxCodeLen {
			return nil, ErrCodeLength
		}
	}
	return &Code{lens: append([]int(nil), lens...)}, nil
}

// NumSymbols reports the size of the code's alphabet.
func (c *Code) NumSymbols() int { return len(c.lens) }

// Length reports the code length of the given symbol.
// A length of 0 means the symbol does not occur in this code.
func (c *Code) Length(sym int) int { return c.lens[sym] }

// Tree reconstructs the canonical code tree described by the length table,
// independent of whatever tree the code was originally derived from.
//
// The tree is assembled bottom-up, one code length at a time: at each
// level the leaves of that length are listed in ascending symbol order,
// followed by the paired-up nodes of the level below. This realizes the
// canonical numbering rule, where codewords of equal length are
// consecutive in symbol order and shorter codewords numerically precede
// the prefixes of longer ones.
//
// A table violating Kraft's inequality in either direction is rejected
// with ErrInvalidLengths. This cannot happen for lengths derived from an
// honest binary tree, but tables read from a stream may be corrupt.
func (c *Code) Tree() (*CodeTree, error) {
	var maxLen int
	for _, n := range c.lens {
		if n > maxLen {
			maxLen = n
		}
	}
	if maxLen == 0 {
		return nil, ErrInvalidLengths
	}

	t := &CodeTree{}
	var nodes []int32 // Nodes of the level below the current one
	for i := maxLen; i >= 0; i-- {
		if len(nodes)%2 != 0 {
			return nil, ErrInvalidLengths
		}
		var level []int32
		if i > 0 {
			for sym, n := range c.lens {
				if n == i {
					t.nodes = append(t.nodes, treeNode{sym: int32(sym), left: -1, right: -1})
					level = append(level, int32(len(t.nodes)-1))
				}
			}
		}
		for j := 0; j < len(nodes); j += 2 {
			t.nodes = append(t.nodes, treeNode{sym: -1, left: nodes[j], right: nodes[j+1]})
			level = append(level, int32(len(t.nodes)-1))
		}
		nodes = level
	}
	if len(nodes) != 1 {
		return nil, ErrInvalidLengths
	}
	t.root = nodes[0]
	return t, nil
}
