// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package adaptive implements the adaptive variant of the huffman format.
//
// The stream carries no code table. Compressor and decompressor both start
// from a flat frequency table with every count set to one and regenerate
// the code tree at points computable from the running symbol count alone:
// at every power of two while the count is below the block size, and at
// every multiple of the block size, where the frequency table is
// additionally reset to its flat state. The running count itself is never
// reset. Since both sides execute the identical arithmetic on the symbols
// they have processed, they stay bit-for-bit synchronized without any
// side channel; a single divergence would corrupt the remainder of the
// stream.
package adaptive

import "io"

const (
	numSymbols = 257     // 256 byte values and the EOF marker
	eofSym     = 256     // Symbol marking the logical end of the payload
	blockSize  = 1 << 18 // Symbols between late rebuilds and table resets
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "adaptive: " + string(e) }

var (
	ErrCorrupt error = Error("stream is corrupted")
)

// corrupted maps a premature end of the compressed stream to ErrCorrupt,
// leaving genuine I/O failures untouched.
func corrupted(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrCorrupt
	}
	return err
}
