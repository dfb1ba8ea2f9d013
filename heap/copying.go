// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A two-space copying collector.

package heap

var _ GarbageCollectingHeap = (*CopyingHeap)(nil)

// A CopyingHeap composes two RamSpaces - an active one that receives
// allocations and an inactive one that is quiescent - plus a single
// BlockTable spanning both. When the active space cannot satisfy an
// allocation, the heap runs a Cheney-style collection: every block the
// tracer reports live is evacuated in ascending block-number order into
// the inactive space, which (being empty and bump-allocated into) ends up
// compacted with no holes between blocks. The two spaces then swap roles.
type CopyingHeap struct {
	spaces [2]*RamSpace
	table  *BlockTable
	active int
}

// NewCopyingHeap returns an empty heap with two heapSize-word semi-spaces
// and a BlockTable of maxBlocks slots.
func NewCopyingHeap(heapSize, maxBlocks int) *CopyingHeap {
	return &CopyingHeap{
		spaces: [2]*RamSpace{NewRamSpace(heapSize), NewRamSpace(heapSize)},
		table:  NewBlockTable(maxBlocks),
	}
}

// collect asks tracer which blocks are live, evacuates them from the
// active space into the inactive one, and swaps which space is active.
// Any error CopyFrom reports (a destination-space overflow, which should
// not occur since the destination starts empty and a collection never
// copies more live data than the source held) is propagated unchanged:
// collect does not retry, that is Allocate's job around the call to
// collect as a whole.
func (h *CopyingHeap) collect(tracer Tracer) error {
	inactive := 1 - h.active
	active, dest := h.spaces[h.active], h.spaces[inactive]

	live := make([]bool, h.table.MaxBlocks())
	tracer.Trace(live)

	for i := 0; i < h.table.MaxBlocks(); i++ {
		d, ok := h.table.Descriptor(i)
		if !ok {
			continue
		}

		if !live[i] {
			h.table.Clear(i)
			continue
		}

		nd, err := active.CopyFrom(d, dest)
		if err != nil {
			return err
		}
		h.table.Set(i, nd)
	}

	active.Clear()
	h.active = inactive
	return nil
}

// Allocate returns a fresh Pointer to an n-word block. If the table has
// no free slot, or the active space cannot satisfy the request, Allocate
// runs a collection and retries exactly once before giving up with
// ErrOutOfBlocks or ErrOutOfMemory respectively - an unconditional retry
// loop would never terminate against a genuinely full heap.
func (h *CopyingHeap) Allocate(n int, tracer Tracer) (Pointer, error) {
	if n == 0 {
		return Pointer{}, &ErrZeroSizeRequest{}
	}

	block, ok := h.table.AvailableBlock()
	if !ok {
		if err := h.collect(tracer); err != nil {
			return Pointer{}, err
		}
		if block, ok = h.table.AvailableBlock(); !ok {
			return Pointer{}, &ErrOutOfBlocks{}
		}
	}

	start, err := h.spaces[h.active].Allocate(n)
	if err != nil {
		if err := h.collect(tracer); err != nil {
			return Pointer{}, err
		}
		if start, err = h.spaces[h.active].Allocate(n); err != nil {
			return Pointer{}, &ErrOutOfMemory{}
		}
	}

	h.table.Set(block, BlockDescriptor{Start: start, Size: n})
	return NewPointer(block, n), nil
}

// Load implements GarbageCollectingHeap. Every live block resides in the
// active space between collections, so Load never needs to consult the
// inactive one.
func (h *CopyingHeap) Load(p Pointer) (Word, error) {
	addr, err := h.table.Address(p)
	if err != nil {
		return 0, err
	}
	return h.spaces[h.active].Load(addr)
}

// Store implements GarbageCollectingHeap.
func (h *CopyingHeap) Store(p Pointer, v Word) error {
	addr, err := h.table.Address(p)
	if err != nil {
		return err
	}
	return h.spaces[h.active].Store(addr, v)
}

// Address implements GarbageCollectingHeap.
func (h *CopyingHeap) Address(p Pointer) (Address, error) {
	return h.table.Address(p)
}

// BlocksInUse implements GarbageCollectingHeap.
func (h *CopyingHeap) BlocksInUse() []int { return h.table.BlocksInUse() }

// AllocatedBlockPtr implements GarbageCollectingHeap.
func (h *CopyingHeap) AllocatedBlockPtr(block int) (Pointer, bool) {
	return h.table.AllocatedBlockPtr(block)
}

// BlocksNumCopies implements GarbageCollectingHeap.
func (h *CopyingHeap) BlocksNumCopies() []BlockCopyCount { return h.table.BlocksNumCopies() }

// AssertNoStrays panics unless the inactive semi-space's allocation
// cursor is zero.
func (h *CopyingHeap) AssertNoStrays() {
	if next := h.spaces[1-h.active].Next(); next != 0 {
		panic(next)
	}
}
