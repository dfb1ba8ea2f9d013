// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A fixed-capacity, word-addressed bump region.

package heap

import "github.com/cznic/mathutil"

// A BlockDescriptor is the table entry for one live block: its base
// address in whichever RamSpace currently hosts it, its size in words,
// and the number of times a collector has relocated it.
type BlockDescriptor struct {
	Start       Address
	Size        int
	TimesCopied int
}

// An Address is a word index into a specific RamSpace. It is only ever
// meaningful relative to the RamSpace that produced it - the same numeric
// value in two different RamSpaces names unrelated words.
type Address int64

// A Word is the 64-bit unit of storage every RamSpace holds.
type Word uint64

// RamSpaceStats reports a RamSpace's lifetime high-water mark, the
// scaled-down equivalent of the AllocStats a persistent allocator would
// track for a Verify pass. It exists purely as a diagnostic; nothing in
// this package's correctness depends on it.
type RamSpaceStats struct {
	Capacity int
	Peak     int
}

// A RamSpace is a fixed-capacity, word-addressed bump region. It knows
// nothing about blocks, pointers or collection - that bookkeeping belongs
// to BlockTable and the heaps built on top of it. A RamSpace is not safe
// for concurrent use.
type RamSpace struct {
	storage []Word
	next    Address
	peak    int
}

// NewRamSpace returns an empty RamSpace with room for size words.
func NewRamSpace(size int) *RamSpace {
	return &RamSpace{storage: make([]Word, size)}
}

// Allocate bump-allocates a run of n words and returns its first address.
// It fails with ErrZeroSizeRequest if n is not positive, or ErrOutOfMemory
// if the space does not have n words left.
func (s *RamSpace) Allocate(n int) (Address, error) {
	if n <= 0 {
		return 0, &ErrZeroSizeRequest{}
	}

	if int(s.next)+n > len(s.storage) {
		return 0, &ErrOutOfMemory{}
	}

	start := s.next
	s.next += Address(n)
	s.peak = mathutil.Max(s.peak, int(s.next))
	return start, nil
}

// Load returns the word stored at a. It fails with ErrIllegalAddress if a
// is at or beyond the allocation cursor - this catches reads of words that
// were never allocated, even if they fall within capacity.
func (s *RamSpace) Load(a Address) (Word, error) {
	if a < 0 || a >= s.next {
		return 0, &ErrIllegalAddress{Address: int64(a), Bound: int64(s.next)}
	}

	return s.storage[a], nil
}

// Store writes v at a. It fails with ErrIllegalAddress if a is outside the
// space's capacity; unlike Load, any reserved slot - not just an
// already-allocated one - is a legal store target.
func (s *RamSpace) Store(a Address, v Word) error {
	if a < 0 || int(a) >= len(s.storage) {
		return &ErrIllegalAddress{Address: int64(a), Bound: int64(len(s.storage))}
	}

	s.storage[a] = v
	return nil
}

// Clear resets the allocation cursor to zero. The space's contents are
// left in place but are considered garbage; the next Allocate will
// overwrite them.
func (s *RamSpace) Clear() {
	s.next = 0
}

// Next reports the current allocation cursor, i.e. the number of words
// handed out since the last Clear.
func (s *RamSpace) Next() Address {
	return s.next
}

// Capacity reports the space's fixed word capacity.
func (s *RamSpace) Capacity() int {
	return len(s.storage)
}

// Stats reports this space's capacity and lifetime high-water mark.
func (s *RamSpace) Stats() RamSpaceStats {
	return RamSpaceStats{Capacity: len(s.storage), Peak: s.peak}
}

// CopyFrom evacuates the block described by desc out of s and into dest,
// returning a fresh descriptor with TimesCopied incremented by one. It
// allocates the destination run with dest.Allocate, so any ErrOutOfMemory
// dest.Allocate produces propagates unchanged to the caller - a collector
// is expected to treat that as a mid-collection failure, not retry it
// itself.
func (s *RamSpace) CopyFrom(desc BlockDescriptor, dest *RamSpace) (BlockDescriptor, error) {
	start, err := dest.Allocate(desc.Size)
	if err != nil {
		return BlockDescriptor{}, err
	}

	for i := 0; i < desc.Size; i++ {
		v, err := s.Load(desc.Start + Address(i))
		if err != nil {
			return BlockDescriptor{}, err
		}
		if err := dest.Store(start+Address(i), v); err != nil {
			return BlockDescriptor{}, err
		}
	}

	return BlockDescriptor{Start: start, Size: desc.Size, TimesCopied: desc.TimesCopied + 1}, nil
}
