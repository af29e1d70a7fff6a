package transmission

import "svw.info/puzzles/internal/geometry"

// acceptsColorStatic is the color test independent of any swap state: a
// SwapperTransmitter counts as accepting either of its two colors.
func acceptsColorStatic(e Element, c ElementGroup) bool {
	if e.Color == c {
		return true
	}
	return e.Kind == KindSwapperTransmitter && e.HasSwapColor && e.SwapColor == c
}

// emittedColor is the color i is currently sending, resolving a
// SwapperTransmitter's dynamic state. An
// unset (ColorSwapped == 0) swapper still emits its primary Color until
// its first incoming connection locks it.
func emittedColor(lvl *Level, st *State, i int) ElementGroup {
	e := lvl.Elements[i]
	if e.Kind != KindSwapperTransmitter {
		return e.Color
	}
	switch st.ColorSwapped[i] {
	case 1:
		return e.SwapColor
	case -1:
		return e.Color
	default:
		return e.Color
	}
}

// acceptedColors lists the colors j currently accepts as an incoming
// connection, again resolving a swapper's lock once one has formed.
func acceptedColors(lvl *Level, st *State, j int) []ElementGroup {
	e := lvl.Elements[j]
	if e.Kind != KindSwapperTransmitter {
		return []ElementGroup{e.Color}
	}
	switch st.ColorSwapped[j] {
	case 1:
		return []ElementGroup{e.Color} // locked emitting SwapColor, so it was fed Color
	case -1:
		return []ElementGroup{e.SwapColor}
	default:
		if e.HasSwapColor {
			return []ElementGroup{e.Color, e.SwapColor}
		}
		return []ElementGroup{e.Color}
	}
}

// canReceive is j's remaining headroom, kind-specific.
func canReceive(lvl *Level, st *State, j int) int {
	e := lvl.Elements[j]
	switch e.Kind {
	case KindReceiver, KindTransceiver, KindSwapperTransmitter:
		room := e.Target - st.Amounts[j]
		if room < 0 {
			return 0
		}
		return room
	case KindRadialTransmitter, KindCellTransmitter:
		return 1 << 30 // unbounded, per the table
	case KindSignalBooster:
		if st.Amounts[j] == 0 {
			return 1 << 30
		}
		return 0
	default:
		return 0
	}
}

// canConnectNow decides whether a manual connection from i to j is
// legal in the current state: statically reachable, no edge between the
// pair yet, i has packets, j has headroom, colors agree under the
// current swap state, no color-matching blocker cuts a dynamically
// colored wire, and (when the objective is active) no wire crossing.
func canConnectNow(lvl *Level, st *State, obj Objectives, i, j int) bool {
	if i == j || !lvl.Connectable[i][j] {
		return false
	}
	if st.Connected[i][j] > 0 || st.Connected[j][i] > 0 {
		return false
	}
	if st.Left[i] <= 0 {
		return false
	}
	if canReceive(lvl, st, j) <= 0 {
		return false
	}

	sc := emittedColor(lvl, st, i)
	matched := false
	for _, ac := range acceptedColors(lvl, st, j) {
		if ac == sc {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	// Fixed-color wires were already tested against blockers when the
	// reachability matrix was built; only a swapper source's emitted
	// color can change per state.
	src, dst := lvl.Elements[i], lvl.Elements[j]
	if src.Kind == KindSwapperTransmitter {
		seg := geometry.LineSegment{A: toGeom(src.Position), B: toGeom(dst.Position)}
		for _, b := range lvl.Blockers {
			if b.Color != sc {
				continue
			}
			if blockerShapeIntersects(b, seg) {
				return false
			}
		}
	}

	if obj.CrossedWires && wireCrosses(lvl, st, i, j) {
		return false
	}
	return true
}

// wireCrosses reports whether the candidate i-j wire would cross any
// already-established wire, per the no-crossing-wires objective. Wires
// to/from a wireless RadialTransmitter never count, since nothing is
// actually drawn for them.
func wireCrosses(lvl *Level, st *State, i, j int) bool {
	if lvl.Elements[i].Kind.isWireless() || lvl.Elements[j].Kind.isWireless() {
		return false
	}
	cand := geometry.LineSegment{A: toGeom(lvl.Elements[i].Position), B: toGeom(lvl.Elements[j].Position)}.Shorten(1)
	for a := range lvl.Elements {
		if lvl.Elements[a].Kind.isWireless() {
			continue
		}
		for b := range lvl.Elements {
			if st.Connected[a][b] <= 0 || lvl.Elements[b].Kind.isWireless() {
				continue
			}
			existing := geometry.LineSegment{A: toGeom(lvl.Elements[a].Position), B: toGeom(lvl.Elements[b].Position)}.Shorten(1)
			if cand.Intersect(existing, nil) {
				return true
			}
		}
	}
	return false
}

// GetAvailableConnections enumerates every legal (i, j) pair, ascending
// by i then j for determinism.
func GetAvailableConnections(lvl *Level, st *State, obj Objectives) [][2]int {
	var out [][2]int
	for i := range lvl.Elements {
		if !lvl.Elements[i].Kind.isSender() || lvl.Elements[i].Kind == KindRadialTransmitter {
			continue
		}
		for j := range lvl.Elements {
			if canConnectNow(lvl, st, obj, i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// ApplyConnection mutates st in place to add the i-j wire, transferring
// as many packets as i has and j can take, running j's onConnected hook,
// then driving flow to a fixed point.
func ApplyConnection(lvl *Level, st *State, i, j int) {
	k := st.Left[i]
	if room := canReceive(lvl, st, j); room < k {
		k = room
	}
	if k <= 0 {
		return
	}
	st.Connected[i][j] += k
	st.Left[i] -= k
	st.Amounts[j] += k
	st.Left[j] += k

	if lvl.Elements[i].Kind == KindCellTransmitter {
		syncCellPool(lvl, st, i)
	}
	onConnected(lvl, st, i, j)
	flowToFixedPoint(lvl, st)
}

// onConnected runs destination-kind-specific reactions to a packet
// delivery.
func onConnected(lvl *Level, st *State, i, j int) {
	e := lvl.Elements[j]
	switch e.Kind {
	case KindSwapperTransmitter:
		if st.ColorSwapped[j] == 0 {
			if emittedColor(lvl, st, i) == e.Color {
				st.ColorSwapped[j] = 1 // now emits SwapColor
			} else {
				st.ColorSwapped[j] = -1 // now emits Color
			}
		}
	case KindSignalBooster:
		st.Left[j] *= 2
	case KindCellTransmitter:
		syncCellPool(lvl, st, j)
	}
}

// syncCellPool replicates j's undelivered packet count to every other
// CellTransmitter sharing its color. The pool acts as a single shared
// reservoir, so both amounts and left mirror j's left. Runs both when a
// cell receives and after a cell sends.
func syncCellPool(lvl *Level, st *State, j int) {
	color := lvl.Elements[j].Color
	left := st.Left[j]
	for k, e := range lvl.Elements {
		if k == j || e.Kind != KindCellTransmitter || e.Color != color {
			continue
		}
		st.Amounts[k] = left
		st.Left[k] = left
	}
}

// flowToFixedPoint repeatedly tops up existing wires and radial
// broadcasts until a full pass makes no further change. Existing edges
// are processed in ascending (i, j) order and radials in ascending id
// order, so cascades resolve deterministically.
func flowToFixedPoint(lvl *Level, st *State) {
	for {
		if !flowOncePass(lvl, st) {
			return
		}
	}
}

func flowOncePass(lvl *Level, st *State) bool {
	changed := false

	for i := range lvl.Elements {
		// Radial edges are topped up by radialBroadcast below, never by
		// draining the radial's own left.
		if !lvl.Elements[i].Kind.isSender() || st.Left[i] <= 0 {
			continue
		}
		for j := range lvl.Elements {
			if st.Connected[i][j] <= 0 {
				continue
			}
			extra := st.Left[i]
			if room := canReceive(lvl, st, j); room < extra {
				extra = room
			}
			if extra <= 0 {
				continue
			}
			st.Connected[i][j] += extra
			st.Left[i] -= extra
			st.Amounts[j] += extra
			st.Left[j] += extra
			if lvl.Elements[i].Kind == KindCellTransmitter {
				syncCellPool(lvl, st, i)
			}
			onConnected(lvl, st, i, j)
			changed = true
		}
	}

	for i, e := range lvl.Elements {
		if e.Kind != KindRadialTransmitter {
			continue
		}
		if radialBroadcast(lvl, st, i) {
			changed = true
		}
	}

	return changed
}

// radialBroadcast tops up every matching, not-already-reverse-connected
// receiver within minRadius to the radial's received total. The total is
// the sum of incoming edge weights, so packets the radial relays never
// multiply; each receiver is only topped up to that sum.
func radialBroadcast(lvl *Level, st *State, i int) bool {
	changed := false
	src := lvl.Elements[i]
	desired := 0
	for j := range lvl.Elements {
		desired += st.Connected[j][i]
	}
	if desired <= 0 {
		return false
	}
	for m, dst := range lvl.Elements {
		if m == i || !dst.Kind.isReceiver() || !acceptsColorStatic(dst, src.Color) {
			continue
		}
		if st.Connected[m][i] > 0 {
			continue // m already sends to the radial; don't loop back
		}
		if toGeom(src.Position).DistanceTo(toGeom(dst.Position)) > src.MinRadius {
			continue
		}
		current := st.Connected[i][m]
		if desired <= current {
			continue
		}
		extra := desired - current
		if room := canReceive(lvl, st, m); room < extra {
			extra = room
		}
		if extra <= 0 {
			continue
		}
		st.Connected[i][m] += extra
		st.Amounts[m] += extra
		st.Left[m] += extra
		onConnected(lvl, st, i, m)
		changed = true
	}
	return changed
}

// WinPredicate reports whether every target-bearing element (Receiver,
// Transceiver, SwapperTransmitter) has met its target, strengthened by
// any active TargetValue objective.
func WinPredicate(lvl *Level, st *State, obj Objectives) bool {
	for i, e := range lvl.Elements {
		switch e.Kind {
		case KindReceiver, KindTransceiver, KindSwapperTransmitter:
			if st.Amounts[i] < e.Target {
				return false
			}
		}
	}
	if obj.TargetValue >= 0 && st.Left[obj.TargetValue] <= 0 {
		return false
	}
	return true
}
