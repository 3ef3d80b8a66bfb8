// Package convexhull builds the convex hull of a set of integer points with
// an angular sweep (Graham scan) that keeps collinear boundary points.
//
// Overview:
//
//   - The pivot is the lowest point, leftmost on ties; it is always on the hull.
//   - Points are sorted by polar angle around the pivot, nearer first on equal
//     angles. The trailing run collinear with the pivot is then reversed so the
//     closing edge is walked from its far end back toward the pivot.
//   - A stack scan pops only on strict right turns, so points lying on a hull
//     edge survive.
//
// All arithmetic is exact int64: no epsilon, no square roots. Cross products
// are exact for coordinates within ±2^30.
//
// Key features:
//
//   - ConvexHull(points):        hull boundary, counter-clockwise from the pivot.
//   - Pivot / SortByPolarAngle:  the sort step on its own.
//   - PolarOrder:                the two-key ordering (angle, then distance),
//     each key callable separately.
//   - Contains / IsConvex:       checks against a returned hull.
//   - Ring / FromRing / Area:    interop with github.com/paulmach/orb.
//
// Degenerate inputs:
//
//   - 0 or 1 points are returned unchanged; 2 points are both returned.
//   - Repeated points are reported once, except in the seed pair: an input
//     of coincident points yields two copies.
//   - Collinear input is returned as the whole segment, farthest from the
//     pivot first.
//
// Thread safety: functions are pure apart from reordering the caller's slice.
package convexhull
