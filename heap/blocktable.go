// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A fixed-capacity table mapping block numbers to descriptors.

package heap

import "github.com/cznic/mathutil"

// A BlockCopyCount pairs a live block index with its descriptor's
// TimesCopied, as reported by BlockTable.BlocksNumCopies.
type BlockCopyCount struct {
	Block       int
	TimesCopied int
}

// A BlockTable is a fixed-capacity array of optional BlockDescriptors,
// indexed by block number. A block number is live iff its slot is
// non-empty; BlockTable.Address is the sole path by which a Pointer is
// resolved to a concrete RamSpace address, and it is the indirection that
// lets a Pointer survive a collector relocating the block it names.
type BlockTable struct {
	blocks []*BlockDescriptor
}

// NewBlockTable returns an empty BlockTable with maxBlocks slots.
func NewBlockTable(maxBlocks int) *BlockTable {
	return &BlockTable{blocks: make([]*BlockDescriptor, maxBlocks)}
}

// MaxBlocks returns the table's fixed slot count.
func (t *BlockTable) MaxBlocks() int {
	return len(t.blocks)
}

// AvailableBlock returns the lowest-numbered empty slot, or false if every
// slot is in use.
func (t *BlockTable) AvailableBlock() (int, bool) {
	for i, d := range t.blocks {
		if d == nil {
			return i, true
		}
	}
	return 0, false
}

// Set installs desc as the descriptor for block. It is used by a heap's
// Allocate to record a fresh allocation, and by a collector to replace a
// descriptor with the one CopyFrom returns after evacuation.
func (t *BlockTable) Set(block int, desc BlockDescriptor) {
	t.blocks[block] = &desc
}

// Clear empties block's slot - used by a collector when the tracer does
// not report the block as live.
func (t *BlockTable) Clear(block int) {
	t.blocks[block] = nil
}

// Descriptor returns the descriptor for block and whether it is live.
func (t *BlockTable) Descriptor(block int) (BlockDescriptor, bool) {
	d := t.blocks[block]
	if d == nil {
		return BlockDescriptor{}, false
	}
	return *d, true
}

// Address resolves p to a concrete address, i.e. descriptor.Start +
// p.Offset(), enforcing the full validity cascade in order:
//
//  1. ErrIllegalBlock if p's block number is out of the table's range.
//  2. ErrUnallocatedBlock if that slot is empty.
//  3. ErrOffsetTooBig if p's offset is not less than the block's size.
//  4. ErrMisalignedPointer if p's recorded length no longer matches the
//     block's current size.
//
// Client code relies on this exact ordering to distinguish its own bugs:
// a stale Pointer into a freed-and-reallocated block is reported as
// MisalignedPointer only once OffsetTooBig has been ruled out.
func (t *BlockTable) Address(p Pointer) (Address, error) {
	bn := p.BlockNum()
	if bn < 0 || bn >= len(t.blocks) {
		return 0, &ErrIllegalBlock{Requested: bn, MaxValid: mathutil.Max(len(t.blocks)-1, 0)}
	}

	d := t.blocks[bn]
	if d == nil {
		return 0, &ErrUnallocatedBlock{BlockNum: bn}
	}

	if p.Offset() >= d.Size {
		return 0, &ErrOffsetTooBig{Offset: p.Offset(), BlockNum: bn, BlockSize: d.Size}
	}

	if p.Len() != d.Size {
		return 0, &ErrMisalignedPointer{PointerLen: p.Len(), ActualSize: d.Size, BlockNum: bn}
	}

	return d.Start + Address(p.Offset()), nil
}

// BlocksInUse returns every live block number in ascending order.
func (t *BlockTable) BlocksInUse() []int {
	var live []int
	for i, d := range t.blocks {
		if d != nil {
			live = append(live, i)
		}
	}
	return live
}

// BlocksNumCopies returns (block, TimesCopied) for every live block, in
// ascending block order.
func (t *BlockTable) BlocksNumCopies() []BlockCopyCount {
	var counts []BlockCopyCount
	for i, d := range t.blocks {
		if d != nil {
			counts = append(counts, BlockCopyCount{Block: i, TimesCopied: d.TimesCopied})
		}
	}
	return counts
}

// AllocatedBlockPtr returns the base Pointer for block if it is live.
func (t *BlockTable) AllocatedBlockPtr(block int) (Pointer, bool) {
	if block < 0 || block >= len(t.blocks) {
		return Pointer{}, false
	}

	d := t.blocks[block]
	if d == nil {
		return Pointer{}, false
	}

	return NewPointer(block, d.Size), true
}
