// Package geometry provides the real-arithmetic primitives used by the
// Transmission solver: points, lines, segments and circles, plus the
// predicates the stepper and static-reachability pass use to decide
// whether two elements can see each other.
package geometry

import "math"

// Epsilon is the single zero-test tolerance shared by every predicate in
// this package.
const Epsilon = 1e-6

// Turn classifies the angle at b formed by the rays b->a and b->c.
type Turn int

const (
	TurnRight Turn = iota
	TurnAcute
	TurnObtuse
)

// Point is a location on the plane. Transmission element positions are
// integral in the level format but every predicate here works in floats
// so segment shortening and distance tests stay exact enough.
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y }

func (p Point) Length() float64 { return math.Sqrt(p.Dot(p)) }

func (p Point) DistanceTo(o Point) float64 { return p.Sub(o).Length() }

// Cross returns the z-component of the cross product p x o.
func (p Point) Cross(o Point) float64 { return p.X*o.Y - p.Y*o.X }

// Angle classifies the turn at b relative to the ray a->b, via the sign
// of (c-b)·(b-a). A positive dot product means c continues past b away
// from a (obtuse: the projection of c lands beyond b), a negative dot
// product means c folds back toward a (acute), and a near-zero dot
// product means the three points form a right angle at b.
func Angle(a, b, c Point) Turn {
	d := c.Sub(b).Dot(b.Sub(a))
	switch {
	case math.Abs(d) <= Epsilon:
		return TurnRight
	case d > 0:
		return TurnObtuse
	default:
		return TurnAcute
	}
}
