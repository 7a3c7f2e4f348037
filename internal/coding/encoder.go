// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package coding

import "github.com/icza/bitio"

// Encoder translates symbols into codewords on a bit stream.
type Encoder struct {
	bw    *bitio.Writer
	codes [][]byte // Bit path per symbol; nil for absent symbols
}

// NewEncoder creates an Encoder that writes the codewords of the given
// tree to bw. The Encoder does not own the writer; closing it to flush
// the final padded byte remains the caller's responsibility.
func NewEncoder(bw *bitio.Writer, tree *CodeTree, numSymbols int) *Encoder {
	e := &Encoder{bw: bw}
	e.Reset(tree, numSymbols)
	return e
}

// Reset switches the Encoder to the codewords of a new tree, keeping the
// position in the underlying bit stream. The adaptive model relies on
// this after every tree rebuild.
func (e *Encoder) Reset(tree *CodeTree, numSymbols int) {
	e.codes = tree.Codewords(numSymbols)
}

// WriteSymbol writes the codeword of the given symbol, most significant
// bit first. It panics if the symbol lies outside the alphabet or is
// absent from the current tree.
func (e *Encoder) WriteSymbol(sym int) error {
	if sym < 0 || sym >= len(e.codes) || e.codes[sym] == nil {
		panic(errInvalidSymbol)
	}
	for _, b := range e.codes[sym] {
		if err := e.bw.WriteBool(b != 0); err != nil {
			return err
		}
	}
	return nil
}
