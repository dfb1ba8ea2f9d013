// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyingHeapFillHalfDropOverflow walks spec scenarios 1-3 against a
// single CopyingHeap(96, 12): fill every block, collect away every
// odd-indexed one, then run the space to exact capacity.
func TestCopyingHeapFillHalfDropOverflow(t *testing.T) {
	h := NewCopyingHeap(96, 12)
	tracer := newFakeTracer()

	sizes := []int{2, 10, 4, 8, 6, 12, 6, 24, 4, 8, 2, 8}
	ptrs := make([]Pointer, len(sizes))
	total := 0
	for wantBlock, n := range sizes {
		p, err := tracer.allocate(h, n)
		require.NoError(t, err)
		assert.Equal(t, wantBlock, p.BlockNum())
		assert.Equal(t, n, p.Len())
		ptrs[wantBlock] = p
		total += n
	}
	assert.Equal(t, 94, total)

	_, err := tracer.allocate(h, 1)
	assert.Equal(t, &ErrOutOfBlocks{}, err)
	h.AssertNoStrays()

	// Scenario 2: drop every odd-indexed block, then allocate 4 words.
	remaining := 0
	for i, p := range ptrs {
		if i%2 == 1 {
			tracer.forget(p.BlockNum())
		} else {
			remaining += p.Len()
		}
	}

	fresh, err := tracer.allocate(h, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.BlockNum(), "lowest freed block number is reused")
	assert.EqualValues(t, remaining+4, h.spaces[h.active].Next())
	h.AssertNoStrays()

	// Scenario 3: run the active space to exactly its capacity, then
	// overflow it by one word.
	_, err = tracer.allocate(h, 68)
	require.NoError(t, err)
	assert.EqualValues(t, 96, h.spaces[h.active].Next())

	_, err = tracer.allocate(h, 1)
	assert.Equal(t, &ErrOutOfMemory{}, err)
}

// TestCopyingHeapMisalignedPointerAfterReallocation walks spec scenario 4:
// a pointer into a freed-and-differently-resized block is reported as
// MisalignedPointer, and an offset derived from the old, larger size is
// reported as OffsetTooBig against the block's new, smaller size.
func TestCopyingHeapMisalignedPointerAfterReallocation(t *testing.T) {
	h := NewCopyingHeap(96, 12)
	tracer := newFakeTracer()

	p, err := tracer.allocate(h, 96)
	require.NoError(t, err)
	assert.Equal(t, 0, p.BlockNum())
	s := p.All()[1]

	tracer.forget(p.BlockNum())

	_, err = tracer.allocate(h, 1)
	require.NoError(t, err)

	q, err := tracer.allocate(h, 1)
	require.NoError(t, err)
	assert.Equal(t, p.BlockNum(), q.BlockNum())

	_, err = h.Load(s)
	assert.Equal(t, &ErrOffsetTooBig{Offset: 1, BlockNum: p.BlockNum(), BlockSize: 1}, err)

	_, err = h.Load(p)
	assert.Equal(t, &ErrMisalignedPointer{PointerLen: 96, ActualSize: 1, BlockNum: p.BlockNum()}, err)
}

func TestCopyingHeapZeroSizeRequest(t *testing.T) {
	h := NewCopyingHeap(96, 12)
	tracer := newFakeTracer()
	_, err := h.Allocate(0, tracer)
	assert.Equal(t, &ErrZeroSizeRequest{}, err)
}

func TestCopyingHeapIllegalBlockOnLoad(t *testing.T) {
	h := NewCopyingHeap(96, 12)
	_, err := h.Load(NewPointer(12, 1))
	assert.Equal(t, &ErrIllegalBlock{Requested: 12, MaxValid: 11}, err)
}

func TestCopyingHeapUnallocatedBlockOnLoad(t *testing.T) {
	h := NewCopyingHeap(96, 12)
	tracer := newFakeTracer()
	p, err := tracer.allocate(h, 1)
	require.NoError(t, err)

	_, err = h.Load(NewPointer(p.BlockNum()+1, 1))
	assert.Equal(t, &ErrUnallocatedBlock{BlockNum: p.BlockNum() + 1}, err)
}

// TestCopyingHeapPointerStability exercises the pointer-stability
// invariant: a pointer into a block the tracer keeps reporting live
// continues to resolve after a collection relocates it.
func TestCopyingHeapPointerStability(t *testing.T) {
	h := NewCopyingHeap(16, 4)
	tracer := newFakeTracer()

	p, err := tracer.allocate(h, 2)
	require.NoError(t, err)
	require.NoError(t, h.Store(p.All()[0], 11))
	require.NoError(t, h.Store(p.All()[1], 22))

	// Fill the space with a block the tracer never reports live, then force
	// a collection by overflowing it, with p kept alive.
	_, err = h.Allocate(14, tracer)
	require.NoError(t, err)
	_, err = tracer.allocate(h, 1)
	require.NoError(t, err)

	v0, err := h.Load(p.All()[0])
	require.NoError(t, err)
	v1, err := h.Load(p.All()[1])
	require.NoError(t, err)
	assert.EqualValues(t, 11, v0)
	assert.EqualValues(t, 22, v1)

	for _, c := range h.BlocksNumCopies() {
		if c.Block == p.BlockNum() {
			assert.Equal(t, 1, c.TimesCopied)
		}
	}
}
