// Package bfs provides breadth-first search over a core.Graph, returning
// hop depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Edge lengths are ignored; only connectivity matters.
//   - Directed by default (From→To); WithUndirected follows every incident edge,
//     matching the two traversal modes of the dijkstra package.
//   - Honors MaxDepth (d>0) or no limit (d==0).
//
// Why
//
//	A vertex is reachable by BFS exactly when a shortest-path run from the
//	same start settles it, so Result.Reached predicts which entries of a
//	dijkstra distance vector hold a real distance rather than the sentinel.
//
// Determinism
//
//	Neighbors are enqueued in incidence (insertion) order, so the visit
//	sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.WithUndirected(), bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or a hook error
//	}
//	path, _ := res.PathTo(4)
//
// BFS never touches the graph's processed state.
package bfs
