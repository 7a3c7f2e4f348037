// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/icza/bitio"

	"github.com/dsnet/huffio/internal/coding"
)

// Reader decompresses the static Huffman format. It reads the code length
// header lazily on the first call to Read, then emits decoded bytes until
// the EOF marker is decoded, at which point Read reports io.EOF. Trailing
// padding bits are never interpreted.
type Reader struct {
	OutputOffset int64 // Total number of bytes emitted from Read

	br  *bitio.Reader
	dec *coding.Decoder
	err error // Persistent error
}

// NewReader creates a new Reader reading the compressed stream from r.
func NewReader(r io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(r)
	return hr
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader, but reading from r instead.
func (hr *Reader) Reset(r io.Reader) {
	*hr = Reader{br: bitio.NewReader(r)}
}

func (hr *Reader) Read(buf []byte) (int, error) {
	if hr.err != nil {
		return 0, hr.err
	}
	if hr.dec == nil {
		if err := hr.readHeader(); err != nil {
			hr.err = err
			return 0, err
		}
	}
	var cnt int
	for cnt < len(buf) {
		sym, err := hr.dec.ReadSymbol()
		if err != nil {
			// Running out of bits before the EOF marker is not a
			// normal termination.
			hr.err = corrupted(err)
			return cnt, hr.err
		}
		if sym == eofSym {
			hr.err = io.EOF
			return cnt, hr.err
		}
		buf[cnt] = byte(sym)
		cnt++
		hr.OutputOffset++
	}
	return cnt, nil
}

func (hr *Reader) Close() error {
	if hr.err == io.EOF || hr.err == io.ErrClosedPipe {
		hr.err = io.ErrClosedPipe // Make sure future reads fail
		return nil
	}
	return hr.err // Return the persistent error
}

// readHeader reads the 257 code lengths and reconstructs the canonical
// code tree they describe.
func (hr *Reader) readHeader() error {
	lens := make([]int, numSymbols)
	for sym := range lens {
		v, err := hr.br.ReadBits(8)
		if err != nil {
			return corrupted(err)
		}
		lens[sym] = int(v)
	}
	code, err := coding.NewCodeFromLengths(lens)
	if err != nil {
		return ErrCorrupt
	}
	tree, err := code.Tree()
	if err != nil {
		return ErrCorrupt
	}
	hr.dec = coding.NewDecoder(hr.br, tree)
	return nil
}
