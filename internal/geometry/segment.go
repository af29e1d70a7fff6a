package geometry

import "math"

// LineSegment is a bounded segment between two endpoints.
type LineSegment struct {
	A, B Point
}

func (s LineSegment) vector() Point { return s.B.Sub(s.A) }

func (s LineSegment) length() float64 { return s.vector().Length() }

// Distance returns the perpendicular distance from p to the segment if the
// foot of the perpendicular lies inside the segment; otherwise the
// distance to the nearer endpoint. The foot lies outside whenever the
// angle at that endpoint between the segment and p is obtuse in the sense
// of Angle, i.e. p projects past the endpoint.
func (s LineSegment) Distance(p Point) float64 {
	if Angle(s.B, s.A, p) == TurnObtuse {
		return s.A.DistanceTo(p)
	}
	if Angle(s.A, s.B, p) == TurnObtuse {
		return s.B.DistanceTo(p)
	}
	return Line{s.A, s.B}.Distance(p)
}

// Intersect reports whether s and o intersect, writing the intersection
// point to out when it is non-nil and the segments are not collinear.
// Collinear overlap counts as intersecting even though no single point is
// returned. t=0 or t=1 (an endpoint touch) counts as intersection.
func (s LineSegment) Intersect(o LineSegment, out *Point) bool {
	d1 := s.vector()
	d2 := o.vector()
	denom := d1.Cross(d2)

	if math.Abs(denom) <= Epsilon {
		// Parallel. Collinear iff (o.A - s.A) is parallel to d1 too.
		diff := o.A.Sub(s.A)
		if math.Abs(diff.Cross(d1)) > Epsilon {
			return false // parallel, not collinear: never intersects
		}
		return segmentsOverlapCollinear(s, o)
	}

	diff := o.A.Sub(s.A)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom

	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return false
	}
	if out != nil {
		*out = s.A.Add(d1.Scale(t))
	}
	return true
}

// segmentsOverlapCollinear assumes s and o lie on the same infinite line
// and tests whether their intervals, projected onto s's direction,
// overlap.
func segmentsOverlapCollinear(s, o LineSegment) bool {
	dir := s.vector()
	// Project every endpoint onto dir to get a 1-D overlap test.
	proj := func(p Point) float64 { return p.Sub(s.A).Dot(dir) }
	sLo, sHi := proj(s.A), proj(s.B)
	if sLo > sHi {
		sLo, sHi = sHi, sLo
	}
	oLo, oHi := proj(o.A), proj(o.B)
	if oLo > oHi {
		oLo, oHi = oHi, oLo
	}
	return sLo <= oHi+Epsilon && oLo <= sHi+Epsilon
}

// Shorten returns a new segment pulled in by distance d at each endpoint,
// symmetrically, so that two wires sharing an endpoint (the element's
// connection point) do not register as crossing just because they touch
// there. Segments shorter than 2d collapse to their midpoint rather than
// inverting.
func (s LineSegment) Shorten(d float64) LineSegment {
	length := s.length()
	if length <= Epsilon {
		return s
	}
	if length <= 2*d {
		mid := s.A.Add(s.vector().Scale(0.5))
		return LineSegment{mid, mid}
	}
	dir := s.vector().Scale(1 / length)
	return LineSegment{
		A: s.A.Add(dir.Scale(d)),
		B: s.B.Sub(dir.Scale(d)),
	}
}
