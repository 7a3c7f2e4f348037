// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

// CodeTree is a binary prefix-code tree over a subset of the alphabet.
// Every symbol in the tree appears as exactly one leaf, and the root-to-leaf
// path of left/right choices is the symbol's codeword. Trees are immutable
// once built; rebuilding produces a new tree value.
//
// The tree owns its nodes in an index-addressed arena. There are no parent
// pointers since all traversals run root to leaf.
type CodeTree struct {
	nodes []treeNode
	root  int32
}

// treeNode is a node in the arena. A leaf has both child indexes set to -1
// and sym holding its symbol; an internal node has two valid children and
// sym set to -1.
type treeNode struct {
	sym         int32
	left, right int32
}

// Codewords returns the root-to-leaf bit path of every symbol, indexed by
// symbol, with a nil entry for symbols absent from the tree. A left edge
// contributes a 0 bit and a right edge a 1 bit.
func (t *CodeTree) Codewords(numSymbols int) [][]byte {
	codes := make([][]byte, numSymbols)
	var path []byte
	var walk func(n int32)
	walk = func(n int32) {
		nd := t.nodes[n]
		if nd.left < 0 {
			codes[nd.sym] = append([]byte(nil), path...)
			return
		}
		path = append(path, 0)
		walk(nd.left)
		path[len(path)-1] = 1
		walk(nd.right)
		path = path[:len(path)-1]
	}
	walk(t.root)
	return codes
}
