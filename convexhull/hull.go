package convexhull

import "slices"

// ConvexHull returns the convex hull boundary of points, counter-clockwise
// from the pivot, keeping points that lie on the boundary.
//
// Steps:
//  1. Fewer than 2 points: return the input unchanged.
//  2. Pick the pivot (lowest Y, then lowest X).
//  3. SortByPolarAngle: angular sort around the pivot, then reverse the
//     trailing run of points collinear with the pivot so the farthest comes
//     first on the closing edge.
//  4. Scan with a stack seeded with the first two sorted points: pop the top
//     while the candidate lies strictly right of second→top, then push it.
//     A candidate equal to the current top is skipped.
//
// Side effect: points is reordered in place.
//
// Degenerate inputs: if every point coincides, the seed pair is returned.
// If all points are collinear, the whole segment is returned, farthest first.
//
// Complexity: O(n log n) time, O(n) space.
func ConvexHull(points []Point) []Point {
	if len(points) < 2 {
		return points
	}

	pivot, _ := Pivot(points)
	SortByPolarAngle(points, pivot)

	stack := make([]Point, 0, len(points))
	stack = append(stack, points[0], points[1])
	for _, p := range points[2:] {
		if p == stack[len(stack)-1] {
			// Equal points sort adjacent; a repeat would hide the turn test.
			continue
		}
		// The second sorted point always stays: len(stack) never drops below 2.
		for len(stack) >= 2 && Cross(stack[len(stack)-2], stack[len(stack)-1], p) < 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	return stack
}

// Pivot returns the point with the lowest Y, breaking ties by lowest X.
// It reports false for an empty slice.
func Pivot(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	return pivot, true
}

// SortByPolarAngle orders points in place by PolarOrder around pivot, then
// reverses the maximal trailing run collinear with the first and last points
// so that run reads farthest to nearest.
//
// When every point is collinear the whole slice is reversed.
func SortByPolarAngle(points []Point, pivot Point) {
	if len(points) < 2 {
		return
	}
	slices.SortStableFunc(points, PolarOrder{Pivot: pivot}.Compare)

	first, last := points[0], points[len(points)-1]
	i := len(points) - 2
	for i >= 0 && Cross(first, last, points[i]) == 0 {
		i--
	}
	slices.Reverse(points[i+1:])
}
