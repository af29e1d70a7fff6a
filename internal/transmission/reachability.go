package transmission

import (
	"math"

	"svw.info/puzzles/internal/geometry"
)

func toGeom(p Point) geometry.Point { return geometry.Point{X: p.X, Y: p.Y} }

// senderColors and receiverColors list an element's candidate colors. A
// non-swapper's only candidate color is its fixed Color; a
// SwapperTransmitter can use either Color or SwapColor. colorsCompatible
// reports whether some candidate of the sender matches some candidate of
// the receiver.
func senderColors(e Element) []ElementGroup {
	if e.Kind == KindSwapperTransmitter && e.HasSwapColor {
		return []ElementGroup{e.Color, e.SwapColor}
	}
	return []ElementGroup{e.Color}
}

func receiverColors(e Element) []ElementGroup {
	if e.Kind == KindSwapperTransmitter && e.HasSwapColor {
		return []ElementGroup{e.Color, e.SwapColor}
	}
	return []ElementGroup{e.Color}
}

func colorsCompatible(src, dst Element) bool {
	for _, sc := range senderColors(src) {
		for _, dc := range receiverColors(dst) {
			if sc == dc {
				return true
			}
		}
	}
	return false
}

// blockerSourceColor resolves which color a static blocker tests against for a
// given (src, dst) pair: the source's fixed color if it has one, else the
// destination's, else "skip" (dynamic, resolved per-state at connect
// time).
func blockerSourceColor(src, dst Element) (ElementGroup, bool) {
	if src.Kind != KindSwapperTransmitter {
		return src.Color, true
	}
	if dst.Kind != KindSwapperTransmitter {
		return dst.Color, true
	}
	return 0, false
}

// computeReachability builds the [i][j] boolean matrix of pairs that
// may ever be connected, computed once per level.
func computeReachability(lvl *Level) [][]bool {
	n := len(lvl.Elements)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}

	for i, src := range lvl.Elements {
		if !src.Kind.isSender() || src.Kind == KindRadialTransmitter {
			continue
		}
		for j, dst := range lvl.Elements {
			if i == j || !dst.Kind.isReceiver() {
				m[i][j] = false
				continue
			}
			if !colorsCompatible(src, dst) {
				continue
			}
			// Two CellTransmitters already share one pool; wiring them
			// to each other would move packets nowhere.
			if src.Kind == KindCellTransmitter && dst.Kind == KindCellTransmitter {
				continue
			}
			seg := geometry.LineSegment{A: toGeom(src.Position), B: toGeom(dst.Position)}
			if interposedBetween(lvl, i, j, seg) {
				continue
			}
			if blockerIntersects(lvl, src, dst, seg) {
				continue
			}
			m[i][j] = true
		}
	}
	return m
}

// interposedBetween reports whether any third element k (k != i, k != j)
// sits close enough to the i-j segment to block it, using k's own
// inBetweenRadius.
func interposedBetween(lvl *Level, i, j int, seg geometry.LineSegment) bool {
	for k, elem := range lvl.Elements {
		if k == i || k == j {
			continue
		}
		if seg.Distance(toGeom(elem.Position)) < elem.Kind.inBetweenRadius() {
			return true
		}
	}
	return false
}

func blockerIntersects(lvl *Level, src, dst Element, seg geometry.LineSegment) bool {
	color, ok := blockerSourceColor(src, dst)
	if !ok {
		return false // dynamic color, resolved per-state in canConnectNow
	}
	for _, b := range lvl.Blockers {
		if b.Color != color {
			continue
		}
		if blockerShapeIntersects(b, seg) {
			return true
		}
	}
	return false
}

func blockerShapeIntersects(b Element, seg geometry.LineSegment) bool {
	switch b.Kind {
	case KindSignalBlockLine:
		line := geometry.LineSegment{A: toGeom(b.BlockStart), B: toGeom(b.BlockEnd)}
		return line.Intersect(seg, nil)
	case KindSignalBlockCircle:
		c := geometry.Circle{Center: toGeom(b.Position), Radius: b.BlockRadius}
		return c.Intersect(seg)
	case KindSignalBlockHexagon:
		return hexagonIntersects(b, seg)
	}
	return false
}

// hexagonVertices builds the 6 vertices of a SignalBlockHexagon: vertex
// i (1..6) sits at (cos(pi*i/3), sin(pi*i/3)) scaled by radius and
// offset by center, putting a corner at (radius, 0); flip swaps which of
// sin/cos drives x versus y, putting a corner at (0, radius) instead.
func hexagonVertices(center geometry.Point, radius float64, flip bool) [6]geometry.Point {
	var verts [6]geometry.Point
	for i := 1; i <= 6; i++ {
		s := math.Sin(math.Pi * float64(i) / 3)
		c := math.Cos(math.Pi * float64(i) / 3)
		if flip {
			verts[i-1] = geometry.Point{X: center.X + radius*s, Y: center.Y + radius*c}
		} else {
			verts[i-1] = geometry.Point{X: center.X + radius*c, Y: center.Y + radius*s}
		}
	}
	return verts
}

// hexagonIntersects tests seg against each of the hexagon's 6 edges.
// The edges sit strictly inside the circumscribed circle, so a wire may
// pass through a corner gap a bounding circle would wrongly block.
func hexagonIntersects(b Element, seg geometry.LineSegment) bool {
	verts := hexagonVertices(toGeom(b.Position), b.BlockRadius, b.HexFlip)
	for i := 0; i < 6; i++ {
		edge := geometry.LineSegment{A: verts[i], B: verts[(i+1)%6]}
		if edge.Intersect(seg, nil) {
			return true
		}
	}
	return false
}
