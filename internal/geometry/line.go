package geometry

import "math"

// Line is an infinite line through two distinct points.
type Line struct {
	A, B Point
}

// Distance is the perpendicular distance from p to the infinite line.
func (l Line) Distance(p Point) float64 {
	dir := l.B.Sub(l.A)
	n := dir.Length()
	if n <= Epsilon {
		return l.A.DistanceTo(p)
	}
	// |dir x (p-A)| / |dir|
	return math.Abs(dir.Cross(p.Sub(l.A))) / n
}
