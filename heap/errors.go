// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrZeroSizeRequest is returned by Allocate when asked for a zero-word
// block.
type ErrZeroSizeRequest struct{}

func (*ErrZeroSizeRequest) Error() string { return "heap: zero size request" }

// ErrOutOfMemory is returned by Allocate when a block's host RamSpace
// cannot satisfy the request even after any collection retry the heap
// performs internally.
type ErrOutOfMemory struct{}

func (*ErrOutOfMemory) Error() string { return "heap: out of memory" }

// ErrOutOfBlocks is returned by Allocate when every BlockTable slot is in
// use, even after any collection retry the heap performs internally.
type ErrOutOfBlocks struct{}

func (*ErrOutOfBlocks) Error() string { return "heap: out of blocks" }

// ErrIllegalBlock is returned by BlockTable.Address when a Pointer names a
// block number outside [0, MaxValid].
type ErrIllegalBlock struct {
	Requested int
	MaxValid  int
}

func (e *ErrIllegalBlock) Error() string {
	return fmt.Sprintf("heap: illegal block %d, max valid block is %d", e.Requested, e.MaxValid)
}

// ErrUnallocatedBlock is returned by BlockTable.Address when a Pointer
// names a block number that is currently empty.
type ErrUnallocatedBlock struct {
	BlockNum int
}

func (e *ErrUnallocatedBlock) Error() string {
	return fmt.Sprintf("heap: block %d is not allocated", e.BlockNum)
}

// ErrOffsetTooBig is returned by BlockTable.Address when a Pointer's
// offset is not less than its block's size.
type ErrOffsetTooBig struct {
	Offset    int
	BlockNum  int
	BlockSize int
}

func (e *ErrOffsetTooBig) Error() string {
	return fmt.Sprintf("heap: offset %d too big for block %d of size %d", e.Offset, e.BlockNum, e.BlockSize)
}

// ErrMisalignedPointer is returned by BlockTable.Address when a Pointer's
// recorded length no longer matches the size of the block it names - the
// block has been freed and reallocated at a different size since the
// pointer was minted.
type ErrMisalignedPointer struct {
	PointerLen int
	ActualSize int
	BlockNum   int
}

func (e *ErrMisalignedPointer) Error() string {
	return fmt.Sprintf(
		"heap: pointer length %d does not match block %d's actual size %d",
		e.PointerLen, e.BlockNum, e.ActualSize,
	)
}

// ErrIllegalAddress is returned by RamSpace.Load and RamSpace.Store for a
// raw address outside the relevant bound. Load checks against the
// allocation cursor (the high water mark); Store checks against capacity.
// Client code normally never sees this error, since BlockTable.Address
// validates a Pointer before any RamSpace access - it surfaces only when
// a RamSpace is driven directly.
type ErrIllegalAddress struct {
	Address int64
	Bound   int64
}

func (e *ErrIllegalAddress) Error() string {
	return fmt.Sprintf("heap: illegal address %d, bound %d", e.Address, e.Bound)
}
