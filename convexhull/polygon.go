package convexhull

// Contains reports whether p lies inside or on the boundary of the
// counter-clockwise hull returned by ConvexHull.
//
// A single-point hull contains only that point; a collinear hull contains
// the points of the segment it spans.
func Contains(hull []Point, p Point) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return hull[0] == p
	}
	if isFlat(hull) {
		return onSpan(hull, p)
	}
	n := len(hull)
	for i := 0; i < n; i++ {
		if Cross(hull[i], hull[(i+1)%n], p) < 0 {
			// p is right of edge i: outside.
			return false
		}
	}

	return true
}

// IsConvex reports whether hull is a counter-clockwise convex polygon:
// at least three points, no right turn between consecutive edges (collinear
// vertices allowed) and non-zero area.
func IsConvex(hull []Point) bool {
	n := len(hull)
	if n < 3 {
		return false
	}
	var left int
	for i := 0; i < n; i++ {
		c := Cross(hull[i], hull[(i+1)%n], hull[(i+2)%n])
		if c < 0 {
			return false
		}
		if c > 0 {
			left++
		}
	}

	return left > 0
}

// isFlat reports whether every hull point is collinear with the first two
// distinct ones.
func isFlat(hull []Point) bool {
	a := hull[0]
	var b Point
	found := false
	for _, q := range hull[1:] {
		if q != a {
			b, found = q, true
			break
		}
	}
	if !found {
		return true
	}
	for _, q := range hull {
		if Cross(a, b, q) != 0 {
			return false
		}
	}

	return true
}

// onSpan reports whether p lies on the segment covered by flat hull points.
func onSpan(hull []Point, p Point) bool {
	lo, hi := hull[0], hull[0]
	for _, q := range hull[1:] {
		if q.X < lo.X || (q.X == lo.X && q.Y < lo.Y) {
			lo = q
		}
		if q.X > hi.X || (q.X == hi.X && q.Y > hi.Y) {
			hi = q
		}
	}
	if Cross(lo, hi, p) != 0 {
		return false
	}

	return min(lo.X, hi.X) <= p.X && p.X <= max(lo.X, hi.X) &&
		min(lo.Y, hi.Y) <= p.Y && p.Y <= max(lo.Y, hi.Y)
}
