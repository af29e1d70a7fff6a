package geometry

// Circle is used for the circle signal-block shape.
type Circle struct {
	Center Point
	Radius float64
}

// Intersect reports whether the segment passes within the circle's
// radius of its center.
func (c Circle) Intersect(s LineSegment) bool {
	return s.Distance(c.Center) <= c.Radius+Epsilon
}
