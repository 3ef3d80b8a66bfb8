// Package hullpath gathers two classic algorithms over exact integer data:
// a convex hull that keeps collinear boundary points, and a single-source
// shortest-path search over a graph with static non-negative edge lengths.
//
// What is in here?
//
//	• convexhull/ — Graham scan over int64 points: pivot, polar sort,
//	                stack scan, plus Contains/IsConvex and orb interop
//	• core/       — Graph, Vertex, Edge with integer IDs and the per-vertex
//	                processed flag a search run sets
//	• dijkstra/   — shortest distances from one source, directed by default,
//	                with 1,000,000 marking unreachable vertices
//	• bfs/        — hop-count reachability over the same graph
//	• examples/   — a runnable route finder and fence outline
//
// Why?
//
//   - Exact – integer cross products and saturating sums, no epsilons
//   - Predictable – equal angles, equal lengths and duplicate points all
//     resolve the same way every run
//   - Small – functional options, sentinel errors, no global state
//
// Quick example:
//
//	    [1]──2──[3]
//	     │       │
//	     1       4
//	     │       │
//	    [2]──────[4]
//	         9
//
//	g := core.NewGraph()
//	g.AddEdge(1, 3, 2)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(3, 4, 4)
//	g.AddEdge(2, 4, 9)
//	dist, _, _ := dijkstra.Dijkstra(g, 1) // dist[4] == 6
//
//	hull := convexhull.ConvexHull([]convexhull.Point{{0, 0}, {2, 0}, {1, 1}, {1, 0}})
//	// [{0 0} {1 0} {2 0} {1 1}]
//
//	go get github.com/katalvlaran/hullpath
package hullpath
