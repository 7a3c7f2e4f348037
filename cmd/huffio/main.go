// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// huffio is a file compressor built on Huffman prefix coding.
//
// Usage:
//
//	huffio [-d] [-a] input output
//
// The static format (the default) writes a 257-entry code length table
// ahead of the coded body. With -a the adaptive format is used instead,
// which carries no table and adapts both ends of the stream in lockstep.
// On any failure the partially written output file is removed, so a
// failed run never leaves a valid-looking output behind.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/dsnet/huffio/huffman"
	"github.com/dsnet/huffio/huffman/adaptive"
)

var (
	decompress = flag.Bool("d", false, "decompress the input rather than compress it")
	adaptMode  = flag.Bool("a", false, "use the adaptive model (streams carry no code table)")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-d] [-a] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := transform(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath) // Leave no partially written output behind
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return errors.Wrap(err, "close output")
	}
	return nil
}

func transform(dst io.Writer, src io.Reader) error {
	if *decompress {
		var rd io.Reader
		if *adaptMode {
			rd = adaptive.NewReader(src)
		} else {
			rd = huffman.NewReader(src)
		}
		_, err := io.Copy(dst, rd)
		return errors.Wrap(err, "decompress")
	}

	var wr io.WriteCloser
	if *adaptMode {
		wr = adaptive.NewWriter(dst)
	} else {
		wr = huffman.NewWriter(dst)
	}
	if _, err := io.Copy(wr, src); err != nil {
		return errors.Wrap(err, "compress")
	}
	return errors.Wrap(wr.Close(), "compress")
}
