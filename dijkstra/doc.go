// Package dijkstra provides single-source shortest paths on core.Graph with
// non-negative integer edge lengths.
//
// Overview:
//
//   - The source is settled at distance 0 and its outgoing edges seed a
//     min-priority queue keyed by cumulative length from the source.
//   - Each pop settles the entry's target if it is still unprocessed, records
//     its distance, and pushes every edge leading from it to an unprocessed
//     vertex with the cumulative length extended by that edge.
//   - Entries whose target is already processed are discarded: the queue is
//     never decreased in place (“lazy decrease-key”).
//   - Cumulative lengths live on queue entries; core.Edge.Length is never
//     rewritten, so the graph stays reusable across runs.
//
// Directedness:
//
//   - Default: directed. Only edges whose tail is the settled vertex are
//     followed, both when seeding from the source and when relaxing.
//   - WithUndirected(): both steps follow every incident edge to its other
//     endpoint. This is the only switch needed; the loop itself is shared.
//
// Result vector:
//
//   - dist is indexed by vertex ID and sized max(VertexCount, MaxVertexID)+1.
//   - Unreached (1,000,000) marks vertices without a path. A genuine distance
//     can equal the sentinel; use the prev vector to tell them apart.
//   - Cumulative lengths saturate at math.MaxInt64 instead of overflowing.
//
// Processed state:
//
//   - Settling marks the vertex processed on the graph. A second run on the
//     same graph fails with ErrDirtyGraph until g.ClearProcessed() is called,
//     or runs after clearing when WithReset() is passed.
//   - Runs on one graph must be serialized; use g.Clone() for parallel queries.
//
// Complexity:
//
//   - Time:  O(E log E); each edge is pushed at most once per settled endpoint.
//   - Space: O(V + E)
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (dist []int64, prev []int, err error)
//	func PathTo(dist []int64, prev []int, target int) ([]int, error)
//	func Reached(dist []int64, id int) bool
//
// Options: WithUndirected, WithReturnPath, WithReset, WithMaxDistance, WithOnSettle.
package dijkstra
