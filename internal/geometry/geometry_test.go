package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineSegmentIntersectCrossing(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{2, 2}}
	b := LineSegment{Point{0, 2}, Point{2, 0}}
	var out Point
	require.True(t, a.Intersect(b, &out))
	require.InDelta(t, 1, out.X, Epsilon*10)
	require.InDelta(t, 1, out.Y, Epsilon*10)
}

func TestLineSegmentIntersectParallelDisjoint(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{1, 0}}
	b := LineSegment{Point{0, 1}, Point{1, 1}}
	require.False(t, a.Intersect(b, nil))
}

func TestLineSegmentIntersectCollinearOverlap(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{2, 0}}
	b := LineSegment{Point{1, 0}, Point{3, 0}}
	require.True(t, a.Intersect(b, nil))
}

func TestLineSegmentIntersectCollinearDisjoint(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{1, 0}}
	b := LineSegment{Point{2, 0}, Point{3, 0}}
	require.False(t, a.Intersect(b, nil))
}

func TestLineSegmentIntersectEndpointTouch(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{1, 0}}
	b := LineSegment{Point{1, 0}, Point{1, 1}}
	require.True(t, a.Intersect(b, nil))
}

func TestLineSegmentDistanceFallsBackToEndpoint(t *testing.T) {
	s := LineSegment{Point{0, 0}, Point{1, 0}}
	// p is behind A, off the end of the segment.
	require.InDelta(t, 1, s.Distance(Point{-1, 0}), Epsilon*10)
}

func TestLineSegmentDistancePerpendicular(t *testing.T) {
	s := LineSegment{Point{0, 0}, Point{2, 0}}
	require.InDelta(t, 3, s.Distance(Point{1, 3}), Epsilon*10)
}

func TestShortenSymmetric(t *testing.T) {
	s := LineSegment{Point{0, 0}, Point{10, 0}}
	short := s.Shorten(2)
	require.InDelta(t, 2, short.A.X, Epsilon*10)
	require.InDelta(t, 8, short.B.X, Epsilon*10)
}

func TestShortenDegenerateDoesNotInvert(t *testing.T) {
	s := LineSegment{Point{0, 0}, Point{1, 0}}
	short := s.Shorten(5)
	require.InDelta(t, short.A.X, short.B.X, Epsilon*10)
}

func TestCircleIntersect(t *testing.T) {
	c := Circle{Point{0, 0}, 1}
	require.True(t, c.Intersect(LineSegment{Point{-2, 0.5}, Point{2, 0.5}}))
	require.False(t, c.Intersect(LineSegment{Point{-2, 2}, Point{2, 2}}))
}
