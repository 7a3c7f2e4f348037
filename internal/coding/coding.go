// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package coding implements the Huffman coding engine shared by the static
// and adaptive stream formats: frequency accounting, optimal prefix-code
// tree construction, canonical code normalization, and symbol-level
// encoding and decoding over a bit stream.
//
// The alphabet is fixed when a FrequencyTable is created and never changes
// afterwards. Symbol-level operations lack strong error checking for
// performance reasons and require that the caller keeps symbols within
// that alphabet; violations are logic errors and panic.
package coding

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "coding: " + string(e) }

var (
	// ErrEmpty is reported when a code tree is requested from a table in
	// which no symbol has a nonzero count.
	ErrEmpty error = Error("frequency table has no nonzero counts")

	// ErrCodeLength is reported when a code length reaches or exceeds 256,
	// which the stream formats cannot describe.
	ErrCodeLength error = Error("code length exceeds format limit")

	// ErrInvalidLengths is reported when a length table read from an
	// external source does not describe a realizable prefix code.
	ErrInvalidLengths error = Error("length table is not a valid prefix code")

	errInvalidSymbol error = Error("symbol outside alphabet")
)
