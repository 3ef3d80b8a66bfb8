// Package core provides the in-memory weighted Graph used by the dijkstra
// package.
//
// The Graph G = (V,E) is keyed by non-negative integer vertex IDs:
//
//   - Vertices are created on first reference, by AddVertex or implicitly by AddEdge.
//   - Edges are directed From→To with a static non-negative Length. Each edge is
//     appended to a flat list and cross-referenced into both endpoints'
//     incidence lists, so a vertex sees its outgoing and incoming edges.
//   - Parallel edges are accepted. Self-loops require WithLoops().
//   - Every vertex carries a processed flag, initially false. A shortest-path
//     run flips it one way; ClearProcessed resets all flags at once.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error             // O(1)
//	HasVertex(id int) bool              // O(1)
//	Vertices() []int                    // O(V·log V), sorted
//	VertexCount() int                   // O(1)
//	MaxVertexID() int                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, length int64) (edgeID int, err error) // O(1)†
//	Edges() []*Edge                     // O(E), insertion order
//	IncidentEdges(id int) ([]*Edge, error)
//	OutgoingEdges(id int) ([]*Edge, error)
//
//	// Processed state
//	SetProcessed(id int) error
//	Processed(id int) bool
//	ProcessedCount() int
//	ClearProcessed()                    // O(1)
//
//	// Maintenance
//	Clone() *Graph                      // O(V+E), processed state not copied
//	Clear()                             // O(1)
//
// † amortized.
//
// Errors:
//
//	ErrNegativeLength    - AddEdge with length < 0; the graph is left unmodified.
//	ErrNegativeVertexID  - vertex ID < 0.
//	ErrLoopNotAllowed    - self-loop without WithLoops().
//	ErrVertexNotFound    - query on an unknown vertex.
//
// Thread safety:
//
//	All methods lock internally. Processed flags are graph state, so two
//	shortest-path runs on the same instance must be serialized, or each run
//	must use its own Clone().
package core
