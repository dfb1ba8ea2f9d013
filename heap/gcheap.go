// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// GarbageCollectingHeap is the capability common to all three heaps in
// this package. It is implemented by *OnceAndDoneHeap, *CopyingHeap and
// *GenerationalHeap, so client code and shared test helpers can be
// written once against the interface and run against any of the three.
type GarbageCollectingHeap interface {
	// Allocate returns a fresh Pointer to an n-word block, consulting
	// tracer if the heap needs to collect to satisfy the request.
	Allocate(n int, tracer Tracer) (Pointer, error)

	// Load returns the word named by p.
	Load(p Pointer) (Word, error)

	// Store writes v at the word named by p.
	Store(p Pointer, v Word) error

	// Address resolves p to a concrete RamSpace address, for
	// diagnostics; client code normally uses Load/Store instead.
	Address(p Pointer) (Address, error)

	// BlocksInUse enumerates every live block number in ascending
	// order.
	BlocksInUse() []int

	// AllocatedBlockPtr returns the base Pointer for block, if live.
	AllocatedBlockPtr(block int) (Pointer, bool)

	// BlocksNumCopies enumerates (block, TimesCopied) for every live
	// block.
	BlocksNumCopies() []BlockCopyCount

	// AssertNoStrays panics if any semi-space that should be quiescent
	// (inactive) is not. It is a programmer-bug detector, not a
	// caller-facing failure mode; OnceAndDoneHeap's implementation is a
	// no-op since it has no inactive space.
	AssertNoStrays()
}

// NumAllocatedBlocks is a small helper used by tests to count live
// blocks without threading BlocksInUse()'s full slice through call sites
// that only need the count.
func NumAllocatedBlocks(h GarbageCollectingHeap) int {
	return len(h.BlocksInUse())
}
