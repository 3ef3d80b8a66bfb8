// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock on the source graph while snapshotting.

package core

import "github.com/rhartert/sparsesets"

// Clone returns a deep copy of the Graph: options, vertices, edges and
// incidence lists. Edge and vertex IDs are preserved; processed state is
// not carried over, so the clone is ready for a fresh run.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[int]*Vertex, len(g.vertices)),
		bySlot:     make([]*Vertex, len(g.bySlot)),
		edges:      make([]*Edge, len(g.edges)),
		maxID:      g.maxID,
		processed:  sparsesets.New(g.slots),
		slots:      g.slots,
	}
	for i, v := range g.bySlot {
		nv := &Vertex{ID: v.ID, slot: v.slot, edges: make([]*Edge, 0, len(v.edges))}
		clone.bySlot[i] = nv
		clone.vertices[v.ID] = nv
	}
	for i, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Length: e.Length}
		clone.edges[i] = ne
		tail := clone.vertices[e.From]
		head := clone.vertices[e.To]
		tail.edges = append(tail.edges, ne)
		if head != tail {
			head.edges = append(head.edges, ne)
		}
	}

	return clone
}

// Clear removes all vertices and edges, preserving options.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[int]*Vertex)
	g.bySlot = nil
	g.edges = nil
	g.maxID = -1
	g.processed = sparsesets.New(initialSlots)
	g.slots = initialSlots
}
