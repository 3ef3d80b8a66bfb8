package convexhull

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Ring converts a hull into a closed orb.Ring (first point repeated at the
// end) for use with orb's planar and encoding packages. An empty hull yields
// a nil ring.
func Ring(hull []Point) orb.Ring {
	if len(hull) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(hull)+1)
	for _, p := range hull {
		r = append(r, orb.Point{float64(p.X), float64(p.Y)})
	}

	return append(r, r[0])
}

// FromRing converts an orb.Ring back into points, rounding coordinates to the
// nearest integer and dropping the closing point.
func FromRing(r orb.Ring) []Point {
	if len(r) == 0 {
		return nil
	}
	if len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	out := make([]Point, len(r))
	for i, q := range r {
		out[i] = Point{X: int64(math.Round(q[0])), Y: int64(math.Round(q[1]))}
	}

	return out
}

// Area returns the enclosed area of the hull, zero for fewer than three
// points or a flat hull.
func Area(hull []Point) float64 {
	if len(hull) < 3 {
		return 0
	}

	return math.Abs(planar.Area(Ring(hull)))
}
