package convexhull_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hullpath/convexhull"
)

func pts(xy ...int64) []convexhull.Point {
	out := make([]convexhull.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, convexhull.Point{X: xy[i], Y: xy[i+1]})
	}

	return out
}

// HullSuite exercises ConvexHull on hand-picked inputs.
type HullSuite struct {
	suite.Suite
}

func (s *HullSuite) TestTrivialInputsUnchanged() {
	require.Empty(s.T(), convexhull.ConvexHull(nil))

	one := pts(3, 4)
	require.Equal(s.T(), one, convexhull.ConvexHull(one))
}

func (s *HullSuite) TestTwoPointsBothReturned() {
	got := convexhull.ConvexHull(pts(5, 5, 1, 2))
	require.ElementsMatch(s.T(), pts(5, 5, 1, 2), got)
}

func (s *HullSuite) TestCollinearBaseKeepsFarthest() {
	got := convexhull.ConvexHull(pts(1, 1, 2, 0, 0, 0, 1, 0))
	want := pts(0, 0, 1, 0, 2, 0, 1, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
	}
}

func (s *HullSuite) TestCollinearClosingEdgeReversed() {
	got := convexhull.ConvexHull(pts(0, 1, 2, 2, 0, 0, 1, 1, 2, 0, 0, 2))
	want := pts(0, 0, 2, 0, 2, 2, 0, 2, 0, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
	}
}

func (s *HullSuite) TestCollinearSideKept() {
	// (2,1) sits on the right edge, (1,1) is interior.
	got := convexhull.ConvexHull(pts(0, 0, 2, 0, 2, 1, 1, 1, 2, 2, 0, 2))
	want := pts(0, 0, 2, 0, 2, 1, 2, 2, 0, 2)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
	}
}

func (s *HullSuite) TestInteriorDropped() {
	got := convexhull.ConvexHull(pts(0, 0, 4, 0, 4, 4, 0, 4, 2, 2, 1, 3, 3, 1))
	want := pts(0, 0, 4, 0, 4, 4, 0, 4)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
	}
}

func (s *HullSuite) TestPivotTieBreaksOnX() {
	got := convexhull.ConvexHull(pts(3, 0, 1, 0, 2, 5))
	require.Equal(s.T(), convexhull.Point{X: 1, Y: 0}, got[0])
}

func (s *HullSuite) TestAllCollinear() {
	got := convexhull.ConvexHull(pts(1, 1, 3, 3, 0, 0, 2, 2))
	want := pts(3, 3, 2, 2, 1, 1, 0, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
	}
}

func (s *HullSuite) TestAllIdentical() {
	got := convexhull.ConvexHull(pts(7, 7, 7, 7, 7, 7, 7, 7))
	require.Equal(s.T(), pts(7, 7, 7, 7), got)
}

func (s *HullSuite) TestDuplicatePivot() {
	got := convexhull.ConvexHull(pts(0, 0, 2, 0, 0, 0, 1, 2))
	require.True(s.T(), convexhull.IsConvex(got))
	require.Equal(s.T(), convexhull.Point{}, got[0])
	for _, p := range pts(0, 0, 2, 0, 1, 2) {
		require.Contains(s.T(), got, p)
	}
}

func (s *HullSuite) TestInputReordered() {
	in := pts(2, 2, 0, 0, 2, 0)
	_ = convexhull.ConvexHull(in)
	require.Equal(s.T(), convexhull.Point{}, in[0], "input is sorted in place around the pivot")
}

func TestHullSuite(t *testing.T) {
	suite.Run(t, new(HullSuite))
}

func TestPolarOrder(t *testing.T) {
	o := convexhull.PolarOrder{Pivot: convexhull.Point{}}
	a := convexhull.Point{X: 1, Y: 0}
	b := convexhull.Point{X: 1, Y: 1}
	far := convexhull.Point{X: 3, Y: 3}

	require.Equal(t, -1, o.AngleCompare(a, b))
	require.Equal(t, 1, o.AngleCompare(b, a))
	require.Equal(t, 0, o.AngleCompare(b, far))

	require.Equal(t, -1, o.DistanceCompare(b, far))
	require.Equal(t, 1, o.DistanceCompare(far, a))

	require.Equal(t, -1, o.Compare(o.Pivot, a))
	require.Equal(t, 1, o.Compare(a, o.Pivot))
	require.Equal(t, -1, o.Compare(b, far), "equal angle falls back to distance")
	require.Equal(t, 0, o.Compare(far, far))
}

func TestCrossAndDistSq(t *testing.T) {
	o := convexhull.Point{}
	x := convexhull.Point{X: 1}
	require.Positive(t, convexhull.Cross(o, x, convexhull.Point{Y: 1}))
	require.Negative(t, convexhull.Cross(o, x, convexhull.Point{Y: -1}))
	require.Zero(t, convexhull.Cross(o, x, convexhull.Point{X: 5}))
	require.Equal(t, int64(25), convexhull.DistSq(o, convexhull.Point{X: 3, Y: 4}))
}

func TestPivot(t *testing.T) {
	_, ok := convexhull.Pivot(nil)
	require.False(t, ok)

	p, ok := convexhull.Pivot(pts(4, 1, 2, -1, 0, -1, 1, 3))
	require.True(t, ok)
	require.Equal(t, convexhull.Point{X: 0, Y: -1}, p)
}

func TestSortByPolarAngle(t *testing.T) {
	in := pts(0, 2, 2, 0, 1, 1, 0, 1, 0, 0)
	convexhull.SortByPolarAngle(in, convexhull.Point{})
	want := pts(0, 0, 2, 0, 1, 1, 0, 2, 0, 1)
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("SortByPolarAngle() mismatch (-want +got):\n%s", diff)
	}
}

func TestContainsAndIsConvex(t *testing.T) {
	square := pts(0, 0, 4, 0, 4, 4, 0, 4)
	require.True(t, convexhull.IsConvex(square))
	require.True(t, convexhull.Contains(square, convexhull.Point{X: 2, Y: 2}))
	require.True(t, convexhull.Contains(square, convexhull.Point{X: 4, Y: 2}), "boundary counts")
	require.False(t, convexhull.Contains(square, convexhull.Point{X: 5, Y: 2}))

	clockwise := pts(0, 0, 0, 4, 4, 4, 4, 0)
	require.False(t, convexhull.IsConvex(clockwise))
	require.False(t, convexhull.IsConvex(pts(0, 0, 1, 1, 2, 2)), "flat")

	seg := pts(2, 2, 1, 1, 0, 0)
	require.True(t, convexhull.Contains(seg, convexhull.Point{X: 1, Y: 1}))
	require.False(t, convexhull.Contains(seg, convexhull.Point{X: 3, Y: 3}))
	require.False(t, convexhull.Contains(seg, convexhull.Point{X: 1, Y: 0}))

	require.False(t, convexhull.Contains(nil, convexhull.Point{}))
	require.True(t, convexhull.Contains(pts(1, 1), convexhull.Point{X: 1, Y: 1}))
}

func TestRingRoundTrip(t *testing.T) {
	hull := pts(0, 0, 4, 0, 4, 3)
	r := convexhull.Ring(hull)
	require.Len(t, r, 4)
	require.Equal(t, r[0], r[len(r)-1], "ring is closed")
	require.Equal(t, hull, convexhull.FromRing(r))
	require.InDelta(t, 6.0, convexhull.Area(hull), 1e-9)

	require.Nil(t, convexhull.Ring(nil))
	require.Nil(t, convexhull.FromRing(nil))
	require.Zero(t, convexhull.Area(pts(0, 0, 1, 1)))
}

// TestConvexHullProperties checks random inputs on a small grid (many
// duplicates and collinear triples) against the hull invariants and an
// independent monotone-chain hull.
func TestConvexHullProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 500; round++ {
		n := 3 + rng.Intn(30)
		in := make([]convexhull.Point, n)
		for i := range in {
			in[i] = convexhull.Point{X: int64(rng.Intn(9) - 4), Y: int64(rng.Intn(9) - 4)}
		}
		orig := append([]convexhull.Point(nil), in...)
		pivot, _ := convexhull.Pivot(orig)

		hull := convexhull.ConvexHull(in)
		require.Contains(t, hull, pivot, "round %d: pivot must be on the hull", round)

		ref := monotoneChain(orig)
		if len(ref) < 3 {
			// Flat input: the whole segment is returned.
			for _, p := range orig {
				require.Contains(t, hull, p, "round %d", round)
			}
			continue
		}

		require.True(t, convexhull.IsConvex(hull), "round %d: %v", round, hull)
		require.Equal(t, pivot, hull[0], "round %d", round)
		require.InDelta(t, convexhull.Area(ref), convexhull.Area(hull), 1e-9, "round %d", round)

		ring := convexhull.Ring(compact(hull))
		for _, p := range orig {
			require.True(t, convexhull.Contains(hull, p), "round %d: %v outside %v", round, p, hull)
			require.True(t, planar.RingContains(ring, orb.Point{float64(p.X), float64(p.Y)}),
				"round %d: orb disagrees on %v", round, p)
		}
		// Every boundary point of the input is kept.
		for _, p := range orig {
			if onBoundary(ref, p) {
				require.Contains(t, hull, p, "round %d: boundary point dropped", round)
			}
		}
	}
}

// monotoneChain is a strict (collinear-dropping) reference hull.
func monotoneChain(in []convexhull.Point) []convexhull.Point {
	p := append([]convexhull.Point(nil), in...)
	sort.Slice(p, func(i, j int) bool {
		if p[i].X != p[j].X {
			return p[i].X < p[j].X
		}
		return p[i].Y < p[j].Y
	})
	var lower, upper []convexhull.Point
	for _, q := range p {
		for len(lower) >= 2 && convexhull.Cross(lower[len(lower)-2], lower[len(lower)-1], q) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, q)
	}
	for i := len(p) - 1; i >= 0; i-- {
		q := p[i]
		for len(upper) >= 2 && convexhull.Cross(upper[len(upper)-2], upper[len(upper)-1], q) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, q)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func onBoundary(hull []convexhull.Point, p convexhull.Point) bool {
	n := len(hull)
	for i := 0; i < n; i++ {
		a, b := hull[i], hull[(i+1)%n]
		if convexhull.Cross(a, b, p) == 0 &&
			min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
			min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y) {
			return true
		}
	}

	return false
}

// compact drops consecutive repeats before handing the ring to orb.
func compact(hull []convexhull.Point) []convexhull.Point {
	out := make([]convexhull.Point, 0, len(hull))
	for _, p := range hull {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}

	return out
}
