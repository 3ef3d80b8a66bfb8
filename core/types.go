// Package core defines the Graph, Vertex, and Edge types consumed by the
// shortest-path engine, together with the per-vertex processed state that a
// run mutates.
//
// The Graph guards its catalog with a single sync.RWMutex, so construction
// calls and read-only queries are safe across goroutines. Processed state is
// shared by every run on the same instance: serialize runs or Clone the graph.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID below zero.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrNegativeLength   - edge length below zero.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"

	"github.com/rhartert/sparsesets"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates a vertex ID below zero. Distance vectors
	// are indexed by ID, so IDs must be non-negative.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeLength indicates an edge with a negative length was rejected.
	ErrNegativeLength = errors.New("core: edge length cannot be negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// initialSlots is the starting capacity of the processed set.
const initialSlots = 16

// Vertex is a node of the graph.
//
// ID is caller-chosen and non-negative. The incidence list holds every edge
// touching the vertex, outgoing and incoming, in insertion order.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID int

	slot  int     // dense index into Graph.processed
	edges []*Edge // incident edges, insertion order
}

// Edge is a directed connection From→To with a static, non-negative Length.
//
// Edges are stored in both endpoints' incidence lists; direction is decided
// by the traversal. Returned *Edge values must be treated as read-only.
type Edge struct {
	// ID is the insertion index of the edge, starting at 0.
	ID int

	// From is the tail vertex ID.
	From int

	// To is the head vertex ID.
	To int

	// Length is the static edge weight.
	Length int64
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory weighted graph keyed by integer vertex IDs.
//
// Parallel edges are always accepted. Self-loops require WithLoops.
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowLoops bool

	vertices map[int]*Vertex // vertex ID → Vertex
	bySlot   []*Vertex       // dense slot → Vertex
	edges    []*Edge         // insertion order
	maxID    int             // largest vertex ID, -1 when empty

	processed *sparsesets.Set // slots of processed vertices
	slots     int             // capacity of processed
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]*Vertex),
		maxID:     -1,
		processed: sparsesets.New(initialSlots),
		slots:     initialSlots,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
