// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A two-generation copying collector with a promotion threshold.

package heap

var _ GarbageCollectingHeap = (*GenerationalHeap)(nil)

// A GenerationalHeap composes two generations, gen0 and gen1, each a pair
// of RamSpaces, plus a single BlockTable spanning both generations and a
// promotion threshold MaxCopies. A block resides in gen1 iff its
// descriptor's TimesCopied is strictly greater than MaxCopies - a fact
// decidable from the descriptor alone, with no extra per-block
// bookkeeping. A young collection (collectGen0) evacuates gen0 survivors,
// promoting any block that has now been copied MaxCopies times into gen1;
// if gen1 itself is full when that promotion is attempted, the young
// collection cascades into exactly one old collection (collectGen1)
// before retrying the promotion.
type GenerationalHeap struct {
	gen0       [2]*RamSpace
	gen1       [2]*RamSpace
	table      *BlockTable
	activeGen0 int
	activeGen1 int
	maxCopies  int
}

// NewGenerationalHeap returns an empty heap. Each of the four semi-spaces
// (two per generation) holds heapSize words; the single BlockTable spans
// both generations with maxBlocks slots; a block is promoted to gen1 once
// it has been copied more than maxCopies times.
func NewGenerationalHeap(heapSize, maxBlocks, maxCopies int) *GenerationalHeap {
	return &GenerationalHeap{
		gen0:      [2]*RamSpace{NewRamSpace(heapSize), NewRamSpace(heapSize)},
		gen1:      [2]*RamSpace{NewRamSpace(heapSize), NewRamSpace(heapSize)},
		table:     NewBlockTable(maxBlocks),
		maxCopies: maxCopies,
	}
}

// hostSpace returns the RamSpace currently holding a block described by
// d, applying the residency rule.
func (h *GenerationalHeap) hostSpace(d BlockDescriptor) *RamSpace {
	if d.TimesCopied > h.maxCopies {
		return h.gen1[h.activeGen1]
	}
	return h.gen0[h.activeGen0]
}

// collectGen1 is the old collection: every live block with TimesCopied
// strictly greater than maxCopies - i.e. every existing gen1 resident - is
// evacuated from the currently active gen1 space into gen1[destIdx], then
// the source is cleared. It reuses the liveness vector the enclosing
// young collection already obtained from the tracer rather than calling
// the tracer again.
func (h *GenerationalHeap) collectGen1(live []bool, destIdx int) error {
	src := h.gen1[h.activeGen1]
	dest := h.gen1[destIdx]

	for i := 0; i < h.table.MaxBlocks(); i++ {
		if !live[i] {
			continue
		}

		d, ok := h.table.Descriptor(i)
		if !ok || d.TimesCopied <= h.maxCopies {
			continue
		}

		nd, err := src.CopyFrom(d, dest)
		if err != nil {
			return err
		}
		h.table.Set(i, nd)
	}

	src.Clear()
	return nil
}

// collectGen0 is the young collection. It prunes every block the tracer
// no longer reports live, then evacuates the survivors: blocks below the
// promotion threshold move within gen0, blocks exactly at the threshold
// are promoted into gen1 (cascading into collectGen1 if gen1's active
// space is full), and blocks already past the threshold are left alone -
// they are not a gen0 concern once collectGen1 has run, if it does.
func (h *GenerationalHeap) collectGen0(tracer Tracer) error {
	inactiveGen0 := 1 - h.activeGen0
	inactiveGen1 := 1 - h.activeGen1
	activeGen0Space := h.gen0[h.activeGen0]
	inactiveGen0Space := h.gen0[inactiveGen0]

	live := make([]bool, h.table.MaxBlocks())
	tracer.Trace(live)

	gen1Collected := false

	for i := 0; i < h.table.MaxBlocks(); i++ {
		if _, ok := h.table.Descriptor(i); ok && !live[i] {
			h.table.Clear(i)
		}
	}

	for i := 0; i < h.table.MaxBlocks(); i++ {
		if !live[i] {
			continue
		}

		d, ok := h.table.Descriptor(i)
		if !ok {
			continue
		}

		switch {
		case d.TimesCopied < h.maxCopies:
			nd, err := activeGen0Space.CopyFrom(d, inactiveGen0Space)
			if err != nil {
				return err
			}
			h.table.Set(i, nd)

		case d.TimesCopied == h.maxCopies && !gen1Collected:
			nd, err := activeGen0Space.CopyFrom(d, h.gen1[h.activeGen1])
			if err != nil {
				gen1Collected = true
				if err := h.collectGen1(live, inactiveGen1); err != nil {
					return err
				}
				nd, err = activeGen0Space.CopyFrom(d, h.gen1[inactiveGen1])
				if err != nil {
					return err
				}
			}
			h.table.Set(i, nd)

		case d.TimesCopied == h.maxCopies && gen1Collected:
			nd, err := activeGen0Space.CopyFrom(d, h.gen1[inactiveGen1])
			if err != nil {
				return err
			}
			h.table.Set(i, nd)

			// default: TimesCopied > maxCopies - already a gen1 resident,
			// not this pass's concern.
		}
	}

	activeGen0Space.Clear()
	h.activeGen0 = inactiveGen0
	if gen1Collected {
		h.activeGen1 = inactiveGen1
	}
	return nil
}

// Allocate returns a fresh Pointer to an n-word block, always starting
// out in gen0. Mirrors CopyingHeap.Allocate's single-retry structure, but
// collects with collectGen0 instead of a flat two-space collection.
func (h *GenerationalHeap) Allocate(n int, tracer Tracer) (Pointer, error) {
	if n == 0 {
		return Pointer{}, &ErrZeroSizeRequest{}
	}

	block, ok := h.table.AvailableBlock()
	if !ok {
		if err := h.collectGen0(tracer); err != nil {
			return Pointer{}, err
		}
		if block, ok = h.table.AvailableBlock(); !ok {
			return Pointer{}, &ErrOutOfBlocks{}
		}
	}

	start, err := h.gen0[h.activeGen0].Allocate(n)
	if err != nil {
		if err := h.collectGen0(tracer); err != nil {
			return Pointer{}, err
		}
		if start, err = h.gen0[h.activeGen0].Allocate(n); err != nil {
			return Pointer{}, &ErrOutOfMemory{}
		}
	}

	h.table.Set(block, BlockDescriptor{Start: start, Size: n})
	return NewPointer(block, n), nil
}

// Load implements GarbageCollectingHeap, routing through the residency
// rule to whichever generation currently hosts p's block.
func (h *GenerationalHeap) Load(p Pointer) (Word, error) {
	addr, err := h.table.Address(p)
	if err != nil {
		return 0, err
	}
	d, _ := h.table.Descriptor(p.BlockNum())
	return h.hostSpace(d).Load(addr)
}

// Store implements GarbageCollectingHeap.
func (h *GenerationalHeap) Store(p Pointer, v Word) error {
	addr, err := h.table.Address(p)
	if err != nil {
		return err
	}
	d, _ := h.table.Descriptor(p.BlockNum())
	return h.hostSpace(d).Store(addr, v)
}

// Address implements GarbageCollectingHeap.
func (h *GenerationalHeap) Address(p Pointer) (Address, error) {
	return h.table.Address(p)
}

// BlocksInUse implements GarbageCollectingHeap.
func (h *GenerationalHeap) BlocksInUse() []int { return h.table.BlocksInUse() }

// AllocatedBlockPtr implements GarbageCollectingHeap.
func (h *GenerationalHeap) AllocatedBlockPtr(block int) (Pointer, bool) {
	return h.table.AllocatedBlockPtr(block)
}

// BlocksNumCopies implements GarbageCollectingHeap.
func (h *GenerationalHeap) BlocksNumCopies() []BlockCopyCount { return h.table.BlocksNumCopies() }

// AssertNoStrays panics unless both inactive semi-spaces - gen0's and
// gen1's - have a zero allocation cursor.
func (h *GenerationalHeap) AssertNoStrays() {
	if n := h.gen0[1-h.activeGen0].Next(); n != 0 {
		panic(n)
	}
	if n := h.gen1[1-h.activeGen1].Next(); n != 0 {
		panic(n)
	}
}
