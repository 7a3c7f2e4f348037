// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a Huffman-coded compressed data format for
// byte streams.
//
// The format uses an alphabet of 257 symbols: the 256 byte values plus a
// marker for the logical end of the stream. A stream starts with a table
// of exactly 257 code lengths, 8 bits each in symbol order, describing a
// canonical code. The body is the coded input bytes followed by the
// marker's codeword, zero-padded to a whole byte. Bits are packed most
// significant bit first.
package huffman

import (
	"io"
	"runtime"
)

const (
	numSymbols = 257 // 256 byte values and the EOF marker
	eofSym     = 256 // Symbol marking the logical end of the payload
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

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

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
