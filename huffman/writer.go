// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/icza/bitio"

	"github.com/dsnet/huffio/internal/coding"
)

// Writer compresses a byte stream into the static Huffman format.
//
// Building the optimal code requires the symbol statistics of the entire
// input, so the Writer buffers everything written to it and emits the
// compressed stream only on Close.
type Writer struct {
	InputOffset int64 // Total number of bytes processed from Write

	wr  io.Writer
	buf []byte
	err error // Persistent error
}

// NewWriter creates a new Writer writing the compressed stream to w.
func NewWriter(w io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(w)
	return hw
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter, but writing to w instead. Buffer capacity is retained.
func (hw *Writer) Reset(w io.Writer) {
	*hw = Writer{wr: w, buf: hw.buf[:0]}
}

func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	hw.buf = append(hw.buf, buf...)
	hw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close computes the code over the buffered input, writes the length
// table and the coded body, and zero-pads the final byte. It does not
// close the underlying writer.
func (hw *Writer) Close() error {
	if hw.err != nil {
		if hw.err == io.ErrClosedPipe {
			return nil
		}
		return hw.err
	}
	if err := hw.encode(); err != nil {
		hw.err = err
		return err
	}
	hw.err = io.ErrClosedPipe // Make sure future writes fail
	return nil
}

func (hw *Writer) encode() (err error) {
	defer errRecover(&err)

	freqs := coding.NewFrequencyTable(numSymbols, 0)
	for _, b := range hw.buf {
		freqs.Increment(int(b))
	}
	freqs.Increment(eofSym) // The EOF marker is coded exactly once

	tree, err := freqs.BuildTree()
	if err != nil {
		return err
	}
	code, err := coding.NewCode(tree, numSymbols)
	if err != nil {
		return err
	}
	// Replace the tree with the canonical one. Codeword values may
	// change, but every symbol keeps its code length, so the header
	// alone reproduces the tree on the decode side.
	tree, err = code.Tree()
	if err != nil {
		return err
	}

	bw := bitio.NewWriter(hw.wr)
	for sym := 0; sym < numSymbols; sym++ {
		if err := bw.WriteBits(uint64(code.Length(sym)), 8); err != nil {
			return err
		}
	}
	enc := coding.NewEncoder(bw, tree, numSymbols)
	for _, b := range hw.buf {
		if err := enc.WriteSymbol(int(b)); err != nil {
			return err
		}
	}
	if err := enc.WriteSymbol(eofSym); err != nil {
		return err
	}
	return bw.Close()
}
