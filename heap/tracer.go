// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// A Tracer is the root-set discovery collaborator a collecting heap asks
// during a collection. Trace must set live[i] to true for every block
// index currently reachable from the client's roots, for every i in
// [0, len(live)); the heap provides a live slice of the correct length
// (one entry per BlockTable slot) and treats the result as authoritative -
// any block index left false is collected as garbage, even if a client
// still holds a Pointer naming it.
//
// A Tracer does not itself walk block payloads for inter-block references;
// that tracing, if a client's payloads need it, is the Tracer
// implementation's job, not the heap's.
type Tracer interface {
	Trace(live []bool)
}
