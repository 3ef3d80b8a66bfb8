// Package convexhull defines the point type and the orderings used by the
// angular-sweep hull builder.
package convexhull

import "cmp"

// Point is an immutable pair of integer coordinates.
type Point struct {
	X, Y int64
}

// Cross locates c relative to the vector a→b:
//
//	> 0  c is left of ab
//	= 0  a, b and c are collinear
//	< 0  c is right of ab
//
// Exact for coordinates within ±2^30.
func Cross(a, b, c Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// DistSq is the squared Euclidean distance between a and b. It is only used
// for ordering, so no square root is taken.
func DistSq(a, b Point) int64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}

// PolarOrder sorts points by polar angle around Pivot.
//
// The ordering has two explicit keys:
//
//   - primary:   AngleCompare, the sign of Cross(Pivot, p, q); p before q
//     when q is left of Pivot→p.
//   - secondary: DistanceCompare, squared distance from Pivot ascending,
//     for points collinear with Pivot.
//
// The pivot itself sorts before every other point. The order is total as
// long as no point lies below the pivot, which Pivot guarantees.
type PolarOrder struct {
	Pivot Point
}

// AngleCompare orders p and q by polar angle around the pivot only.
func (o PolarOrder) AngleCompare(p, q Point) int {
	c := Cross(o.Pivot, p, q)
	switch {
	case c > 0:
		return -1
	case c < 0:
		return 1
	}

	return 0
}

// DistanceCompare orders p and q by squared distance from the pivot only.
func (o PolarOrder) DistanceCompare(p, q Point) int {
	return cmp.Compare(DistSq(o.Pivot, p), DistSq(o.Pivot, q))
}

// Compare combines pivot-first, AngleCompare and DistanceCompare.
// It has the signature expected by slices.SortFunc.
func (o PolarOrder) Compare(p, q Point) int {
	switch {
	case p == q:
		return 0
	case p == o.Pivot:
		return -1
	case q == o.Pivot:
		return 1
	}
	if c := o.AngleCompare(p, q); c != 0 {
		return c
	}

	return o.DistanceCompare(p, q)
}
