// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package adaptive

import (
	"io"

	"github.com/icza/bitio"

	"github.com/dsnet/huffio/internal/coding"
)

// Reader decompresses the adaptive format. It drives the same model
// arithmetic as the Writer, keyed purely off the symbols it decodes, so
// both sides regenerate their trees at identical points.
type Reader struct {
	OutputOffset int64 // Total number of bytes emitted from Read

	dec *coding.Decoder
	m   *model
	err error // Persistent error
}

// NewReader creates a new Reader reading the compressed stream from r.
func NewReader(r io.Reader) *Reader {
	ar := new(Reader)
	ar.Reset(r)
	return ar
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader, but reading from r instead.
func (ar *Reader) Reset(r io.Reader) {
	m := newModel()
	*ar = Reader{
		dec: coding.NewDecoder(bitio.NewReader(r), m.tree),
		m:   m,
	}
}

func (ar *Reader) Read(buf []byte) (int, error) {
	if ar.err != nil {
		return 0, ar.err
	}
	var cnt int
	for cnt < len(buf) {
		sym, err := ar.dec.ReadSymbol()
		if err != nil {
			// Running out of bits before the EOF marker is not a
			// normal termination.
			ar.err = corrupted(err)
			return cnt, ar.err
		}
		if sym == eofSym {
			ar.err = io.EOF
			return cnt, ar.err
		}
		buf[cnt] = byte(sym)
		cnt++
		ar.OutputOffset++

		rebuilt, err := ar.m.update(sym)
		if err != nil {
			ar.err = err
			return cnt, err
		}
		if rebuilt {
			ar.dec.Reset(ar.m.tree)
		}
	}
	return cnt, nil
}

func (ar *Reader) Close() error {
	if ar.err == io.EOF || ar.err == io.ErrClosedPipe {
		ar.err = io.ErrClosedPipe // Make sure future reads fail
		return nil
	}
	return ar.err // Return the persistent error
}
