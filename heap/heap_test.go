// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// fakeTracer is a directly programmable stand-in for the root-set
// discovery collaborator spec.md describes: tests mark blocks live or
// dead explicitly instead of modeling a real root graph.
type fakeTracer struct {
	live map[int]bool
}

func newFakeTracer() *fakeTracer {
	return &fakeTracer{live: map[int]bool{}}
}

// Trace implements Tracer.
func (t *fakeTracer) Trace(live []bool) {
	for i := range live {
		live[i] = t.live[i]
	}
}

// track marks p's block reachable from this point on.
func (t *fakeTracer) track(p Pointer) {
	t.live[p.BlockNum()] = true
}

// forget marks block unreachable: the next collection will reclaim it.
func (t *fakeTracer) forget(block int) {
	delete(t.live, block)
}

// allocate calls h.Allocate and, on success, tracks the resulting
// pointer as a live root.
func (t *fakeTracer) allocate(h GarbageCollectingHeap, n int) (Pointer, error) {
	p, err := h.Allocate(n, t)
	if err != nil {
		return Pointer{}, err
	}
	t.track(p)
	return p, nil
}
