// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/IncidentEdges/OutgoingEdges.
// Determinism:
//   - Edges() and IncidentEdges() return insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import "fmt"

// AddEdge appends a directed edge from→to with the given length and links it
// into both endpoints' incidence lists. Missing endpoints are created.
//
// Steps:
//  1. Validate length, IDs and loops; on failure the graph is untouched.
//  2. Ensure both endpoints exist.
//  3. Append the edge to the flat list and to both incidence lists
//     (a self-loop is linked once).
//
// Errors:
//   - ErrNegativeLength:   if length < 0.
//   - ErrNegativeVertexID: if from < 0 or to < 0.
//   - ErrLoopNotAllowed:   if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, length int64) (int, error) {
	if length < 0 {
		return -1, fmt.Errorf("%w: %d→%d length=%d", ErrNegativeLength, from, to, length)
	}
	if from < 0 || to < 0 {
		return -1, fmt.Errorf("%w: %d→%d", ErrNegativeVertexID, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return -1, fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	tail := g.ensureVertex(from)
	head := g.ensureVertex(to)

	e := &Edge{ID: len(g.edges), From: from, To: to, Length: length}
	g.edges = append(g.edges, e)
	tail.edges = append(tail.edges, e)
	if head != tail {
		head.edges = append(head.edges, e)
	}

	return e.ID, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns every edge touching id, outgoing and incoming, in
// insertion order.
//
// Errors:
//   - ErrVertexNotFound: if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]*Edge, len(v.edges))
	copy(out, v.edges)

	return out, nil
}

// OutgoingEdges returns the edges whose tail is id, in insertion order.
//
// Errors:
//   - ErrVertexNotFound: if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) OutgoingEdges(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]*Edge, 0, len(v.edges))
	for _, e := range v.edges {
		if e.From == id {
			out = append(out, e)
		}
	}

	return out, nil
}
