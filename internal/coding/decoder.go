// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

import (
	"io"

	"github.com/icza/bitio"
)

// Decoder translates codewords from a bit stream back into symbols.
type Decoder struct {
	br   *bitio.Reader
	tree *CodeTree
}

// NewDecoder creates a Decoder that reads codewords of the given tree
// from br.
func NewDecoder(br *bitio.Reader, tree *CodeTree) *Decoder {
	d := &Decoder{br: br}
	d.Reset(tree)
	return d
}

// Reset switches the Decoder to a new tree, keeping the position in the
// underlying bit stream. The adaptive model relies on this after every
// tree rebuild.
func (d *Decoder) Reset(tree *CodeTree) { d.tree = tree }

// ReadSymbol follows left/right edges from the root, one bit at a time,
// until a leaf is reached, and returns its symbol. The bit stream running
// dry mid-codeword is reported as io.ErrUnexpectedEOF; whether a clean end
// was even possible is up to the caller, since only it knows if the EOF
// sentinel of its format was already decoded.
func (d *Decoder) ReadSymbol() (int, error) {
	n := d.tree.root
	for {
		nd := d.tree.nodes[n]
		if nd.left < 0 {
			return int(nd.sym), nil
		}
		bit, err := d.br.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if bit {
			n = nd.right
		} else {
			n = nd.left
		}
	}
}
