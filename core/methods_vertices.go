// File: methods_vertices.go
// Role: Vertex lifecycle, queries and processed-state bookkeeping.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Catalog and processed set guarded by g.mu.

package core

import (
	"fmt"
	"sort"

	"github.com/rhartert/sparsesets"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertexID, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex returns the vertex for id, creating it when absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id int) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, slot: len(g.bySlot)}
	g.vertices[id] = v
	g.bySlot = append(g.bySlot, v)
	if id > g.maxID {
		g.maxID = id
	}
	if len(g.bySlot) > g.slots {
		g.growProcessed()
	}

	return v
}

// growProcessed doubles the processed set capacity, keeping its members.
func (g *Graph) growProcessed() {
	next := g.slots * 2
	set := sparsesets.New(next)
	for _, s := range g.processed.Content() {
		set.Insert(s)
	}
	g.processed = set
	g.slots = next
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// MaxVertexID returns the largest vertex ID, or -1 for an empty graph.
// Complexity: O(1).
func (g *Graph) MaxVertexID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxID
}

// SetProcessed marks the vertex as processed. The transition is one-way
// until ClearProcessed.
//
// Errors:
//   - ErrVertexNotFound: if id is unknown.
func (g *Graph) SetProcessed(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	if !g.processed.Contains(v.slot) {
		g.processed.Insert(v.slot)
	}

	return nil
}

// Processed reports whether the vertex is marked processed.
// Unknown vertices report false.
func (g *Graph) Processed(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]

	return ok && g.processed.Contains(v.slot)
}

// ProcessedCount returns how many vertices are marked processed.
func (g *Graph) ProcessedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.processed.Content())
}

// ProcessedVertices returns the processed vertex IDs sorted ascending.
func (g *Graph) ProcessedVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slots := g.processed.Content()
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		out = append(out, g.bySlot[s].ID)
	}
	sort.Ints(out)

	return out
}

// ClearProcessed resets every vertex to unprocessed so the graph can serve
// another shortest-path run.
// Complexity: O(1).
func (g *Graph) ClearProcessed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.processed.Clear()
}
