// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// A Pointer is an opaque handle to a block previously returned by a heap's
// Allocate method. It names a block by identity - (BlockNum, Len) - rather
// than by address, which is what lets a collecting heap relocate the
// block's words during a collection without invalidating handles already
// held by client code. Offset addresses a single word inside the block; a
// Pointer with Offset 0 is the block's base pointer, the one Allocate
// returns.
//
// Pointer is comparable and has no methods that mutate it; NewPointer,
// WithOffset and All all return new values.
type Pointer struct {
	blockNum int
	len      int
	offset   int
}

// NewPointer returns the base pointer (offset 0) for a block of the given
// number and length.
func NewPointer(blockNum, length int) Pointer {
	return Pointer{blockNum: blockNum, len: length}
}

// BlockNum returns the block number this pointer names.
func (p Pointer) BlockNum() int { return p.blockNum }

// Len returns the block's allocation size, carried on the pointer for
// integrity checking by BlockTable.Address.
func (p Pointer) Len() int { return p.len }

// Offset returns this pointer's word offset within its block.
func (p Pointer) Offset() int { return p.offset }

// WithOffset returns a pointer to the same block at a different offset.
func (p Pointer) WithOffset(offset int) Pointer {
	return Pointer{blockNum: p.blockNum, len: p.len, offset: offset}
}

// All returns every pointer into this block, from offset 0 through
// Len()-1, in ascending order.
func (p Pointer) All() []Pointer {
	all := make([]Pointer, p.len)
	for i := range all {
		all[i] = p.WithOffset(i)
	}
	return all
}
