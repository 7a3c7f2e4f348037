// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package adaptive

import (
	"io"

	"github.com/icza/bitio"

	"github.com/dsnet/huffio/internal/coding"
)

// Writer compresses a byte stream with the adaptive model. Unlike the
// static format, no statistics pass is needed, so bytes are coded as they
// are written.
type Writer struct {
	InputOffset int64 // Total number of bytes processed from Write

	bw  *bitio.Writer
	enc *coding.Encoder
	m   *model
	err error // Persistent error
}

// NewWriter creates a new Writer writing the compressed stream to w.
func NewWriter(w io.Writer) *Writer {
	aw := new(Writer)
	aw.Reset(w)
	return aw
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter, but writing to w instead.
func (aw *Writer) Reset(w io.Writer) {
	m := newModel()
	bw := bitio.NewWriter(w)
	*aw = Writer{
		bw:  bw,
		enc: coding.NewEncoder(bw, m.tree, numSymbols),
		m:   m,
	}
}

func (aw *Writer) Write(buf []byte) (int, error) {
	if aw.err != nil {
		return 0, aw.err
	}
	for cnt, b := range buf {
		if err := aw.writeByte(b); err != nil {
			aw.err = err
			return cnt, err
		}
		aw.InputOffset++
	}
	return len(buf), nil
}

// writeByte codes one byte with the current tree, then runs the model
// update that the decoder will mirror after decoding that same byte.
func (aw *Writer) writeByte(b byte) error {
	if err := aw.enc.WriteSymbol(int(b)); err != nil {
		return err
	}
	rebuilt, err := aw.m.update(int(b))
	if err != nil {
		return err
	}
	if rebuilt {
		aw.enc.Reset(aw.m.tree, numSymbols)
	}
	return nil
}

// Close writes the EOF marker with the current tree, zero-pads the final
// byte, and flushes. It does not close the underlying writer.
func (aw *Writer) Close() error {
	if aw.err != nil {
		if aw.err == io.ErrClosedPipe {
			return nil
		}
		return aw.err
	}
	if err := aw.enc.WriteSymbol(eofSym); err != nil {
		aw.err = err
		return err
	}
	if err := aw.bw.Close(); err != nil {
		aw.err = err
		return err
	}
	aw.err = io.ErrClosedPipe // Make sure future writes fail
	return nil
}
