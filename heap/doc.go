// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a family of fixed-capacity, no-allocation
// garbage-collected heaps for environments with no external allocator.
//
// Client code holds opaque Pointer handles returned by a heap's Allocate
// method. A collecting heap may relocate the underlying words during a
// collection, but a Pointer stays valid across that relocation because it
// names an entry in a BlockTable rather than a raw address: the table is
// the indirection that makes relocation invisible to the caller.
//
// Three heaps are provided along a complexity gradient:
//
//	OnceAndDoneHeap  bump allocator, never reclaims
//	CopyingHeap      two semi-spaces, Cheney-style evacuation on failure
//	GenerationalHeap two generations of semi-spaces, promotes blocks that
//	                 survive enough collections
//
// All three are single-threaded values: a mutating call (Allocate, Store,
// an internal collection) requires exclusive use of the heap; Load and the
// enumeration methods do not mutate and may be called freely between
// mutations. There is no concurrency support.
package heap
