// SPDX-License-Identifier: MIT
//
// Package core: edge insertion.
//
// AddEdge is the only mutating operation. It never takes a graph-wide lock:
// vertex creation goes through sync.Map.LoadOrStore and each direction of the
// connection is appended under the owning vertex's mutex.

package core

// AddEdge connects a and b in both directions.
//
// Implementation:
//   - Stage 1: Trim both names; reject empty names (ErrEmptyEndpoint).
//   - Stage 2: Reject names with equal canonical keys (ErrLoopNotAllowed).
//   - Stage 3: Load-or-create both vertices.
//   - Stage 4: Append b to a's neighbor set, then a to b's neighbor set.
//
// Behavior highlights:
//   - Idempotent: an existing connection leaves both sets unchanged.
//   - Not atomic across directions: between Stage 4's two appends a concurrent
//     reader may observe a→b without b→a.
//   - The display form of an endpoint is fixed by whichever AddEdge created it.
//
// Complexity:
//   - Time O(deg(a)+deg(b)) for the copy-on-write appends, Space likewise.
func (g *Graph) AddEdge(a, b string) error {
	nameA, keyA := Normalize(a)
	nameB, keyB := Normalize(b)
	if nameA == "" || nameB == "" {
		return ErrEmptyEndpoint
	}
	if keyA == keyB {
		return ErrLoopNotAllowed
	}

	va := g.ensureVertex(nameA, keyA)
	vb := g.ensureVertex(nameB, keyB)

	va.addNeighbor(vb)
	vb.addNeighbor(va)

	return nil
}

// ensureVertex returns the vertex for key, creating it with display form name
// if it does not exist yet.
func (g *Graph) ensureVertex(name, key string) *Vertex {
	if v, ok := g.vertices.Load(key); ok {
		return v.(*Vertex)
	}
	fresh := &Vertex{key: key, name: name, members: make(map[string]struct{})}
	v, loaded := g.vertices.LoadOrStore(key, fresh)
	if !loaded {
		g.log.Debug("endpoint added", "endpoint", name)
	}

	return v.(*Vertex)
}

// addNeighbor appends n to v's neighbor set unless it is already present.
// The new slice is published atomically; readers holding the previous
// snapshot keep iterating it undisturbed.
func (v *Vertex) addNeighbor(n *Vertex) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.members[n.key]; ok {
		return false
	}
	cur := v.Neighbors()
	next := make([]*Vertex, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, n)

	v.members[n.key] = struct{}{}
	v.nbrs.Store(&next)

	return true
}
