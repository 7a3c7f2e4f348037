// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package adaptive

import "github.com/dsnet/huffio/internal/coding"

// model is the frequency state that both ends of the stream maintain in
// lockstep. count tracks the number of symbols processed since the start
// of the stream and, unlike the frequency table, is never reset.
type model struct {
	freqs *coding.FrequencyTable
	tree  *coding.CodeTree
	count int64
}

func newModel() *model {
	m := &model{freqs: coding.NewFrequencyTable(numSymbols, 1)}
	m.tree, _ = m.freqs.BuildTree() // Flat table, cannot fail
	return m
}

// update feeds one processed symbol into the model and reports whether the
// code tree was regenerated, in which case the caller must switch its
// encoder or decoder to the new tree before touching the next symbol.
// The EOF marker is never fed through update; it is coded with whatever
// tree is current when the stream ends.
func (m *model) update(sym int) (rebuilt bool, err error) {
	m.freqs.Increment(sym)
	m.count++
	if !rebuildAt(m.count) {
		return false, nil
	}
	if m.tree, err = m.freqs.BuildTree(); err != nil {
		return false, err
	}
	if m.count%blockSize == 0 {
		m.freqs.Reset()
	}
	return true, nil
}

// rebuildAt reports whether the tree is regenerated after the count-th
// symbol. Early rebuilds happen at every power of two, while statistics
// are sparse and each batch of symbols is rapidly informative; once a full
// block has been seen, rebuilds settle into a fixed cadence, keeping their
// amortized cost constant per block.
func rebuildAt(count int64) bool {
	if count < blockSize && count&(count-1) == 0 {
		return true
	}
	return count%blockSize == 0
}
