// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A non-reclaiming bump allocator: the baseline heap against which the
// collecting heaps in this package are measured.

package heap

var _ GarbageCollectingHeap = (*OnceAndDoneHeap)(nil)

// An OnceAndDoneHeap never reclaims: it composes a single RamSpace and a
// single BlockTable and simply fails with ErrOutOfMemory or ErrOutOfBlocks
// once either is exhausted. It exists to establish the allocator contract
// the collecting heaps build on, and as a baseline for comparing their
// behavior against.
type OnceAndDoneHeap struct {
	space *RamSpace
	table *BlockTable
}

// NewOnceAndDoneHeap returns an empty heap with room for heapSize words
// across maxBlocks blocks.
func NewOnceAndDoneHeap(heapSize, maxBlocks int) *OnceAndDoneHeap {
	return &OnceAndDoneHeap{
		space: NewRamSpace(heapSize),
		table: NewBlockTable(maxBlocks),
	}
}

// Allocate reserves a free block number and n words for it. The tracer
// argument is accepted to satisfy GarbageCollectingHeap but is never
// consulted, since this heap never collects.
func (h *OnceAndDoneHeap) Allocate(n int, tracer Tracer) (Pointer, error) {
	block, ok := h.table.AvailableBlock()
	if !ok {
		return Pointer{}, &ErrOutOfBlocks{}
	}

	start, err := h.space.Allocate(n)
	if err != nil {
		return Pointer{}, err
	}

	h.table.Set(block, BlockDescriptor{Start: start, Size: n})
	return NewPointer(block, n), nil
}

// Load implements GarbageCollectingHeap.
func (h *OnceAndDoneHeap) Load(p Pointer) (Word, error) {
	addr, err := h.table.Address(p)
	if err != nil {
		return 0, err
	}
	return h.space.Load(addr)
}

// Store implements GarbageCollectingHeap.
func (h *OnceAndDoneHeap) Store(p Pointer, v Word) error {
	addr, err := h.table.Address(p)
	if err != nil {
		return err
	}
	return h.space.Store(addr, v)
}

// Address implements GarbageCollectingHeap.
func (h *OnceAndDoneHeap) Address(p Pointer) (Address, error) {
	return h.table.Address(p)
}

// BlocksInUse implements GarbageCollectingHeap.
func (h *OnceAndDoneHeap) BlocksInUse() []int { return h.table.BlocksInUse() }

// AllocatedBlockPtr implements GarbageCollectingHeap.
func (h *OnceAndDoneHeap) AllocatedBlockPtr(block int) (Pointer, bool) {
	return h.table.AllocatedBlockPtr(block)
}

// BlocksNumCopies implements GarbageCollectingHeap. Every entry is
// (block, 0): this heap never relocates a block.
func (h *OnceAndDoneHeap) BlocksNumCopies() []BlockCopyCount { return h.table.BlocksNumCopies() }

// AssertNoStrays is a no-op: a OnceAndDoneHeap has no inactive space for
// a stray to hide in.
func (h *OnceAndDoneHeap) AssertNoStrays() {}
