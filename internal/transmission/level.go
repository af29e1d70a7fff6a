package transmission

import "github.com/pkg/errors"

// RawElement is one `<element .../>` line as the external parser sees
// it, attribute values already typed but ids not yet renumbered.
type RawElement struct {
	ID           int
	Kind         ElementKind
	Position     Point
	Color        ElementGroup
	HasSwapColor bool
	SwapColor    ElementGroup
	Amount       int
	Target       int
	MinRadius    float64

	BlockStart, BlockEnd Point
	BlockRadius          float64
	HexFlip              bool

	// Objective-only attributes.
	SignalTarget      int
	InformationTarget int
}

// LevelDescription is the only thing the external parser hands to the
// core: a flat, typed list of raw elements, order preserved.
type LevelDescription struct {
	Elements []RawElement
}

// Level is the core's working representation: densely renumbered
// elements, separated blockers and objectives, and the precomputed
// static reachability matrix.
type Level struct {
	Elements    []Element
	Blockers    []Element
	Objectives  []Objective
	Connectable [][]bool // Connectable[i][j]
}

// BuildLevel renumbers ids to a dense 0..N-1 range in insertion order,
// separates blockers and objectives out of the main element list,
// translates informationTarget references through the same id map, and
// precomputes static reachability.
func BuildLevel(desc LevelDescription) (*Level, error) {
	idMap := make(map[int]int)
	lvl := &Level{}

	// First pass: collect blockers, and assign dense ids to every
	// non-blocker, non-objective element, in file order.
	for _, raw := range desc.Elements {
		if raw.Kind.isBlocker() {
			lvl.Blockers = append(lvl.Blockers, rawToElement(raw, -1))
			continue
		}
		if isObjectiveKind(raw.Kind) {
			continue
		}
		newID := len(lvl.Elements)
		idMap[raw.ID] = newID
		lvl.Elements = append(lvl.Elements, rawToElement(raw, newID))
	}

	// Second pass: objectives, translating informationTarget through
	// idMap.
	for _, raw := range desc.Elements {
		if !isObjectiveKind(raw.Kind) {
			continue
		}
		obj, err := rawToObjective(raw, idMap)
		if err != nil {
			return nil, err
		}
		lvl.Objectives = append(lvl.Objectives, obj)
	}

	lvl.Connectable = computeReachability(lvl)
	return lvl, nil
}

func isObjectiveKind(k ElementKind) bool {
	switch k {
	case ObjKindCrossedWires, ObjKindSignalCount, ObjKindTargetValue:
		return true
	}
	return false
}

// The parser encodes objective "elements" using kind values above the
// closed ElementKind enum's real members, since objectives are not wire
// endpoints. These three sentinels only ever appear in RawElement.Kind
// coming out of the parser.
const (
	ObjKindCrossedWires ElementKind = 100 + iota
	ObjKindSignalCount
	ObjKindTargetValue
)

func rawToElement(raw RawElement, id int) Element {
	return Element{
		ID:           id,
		Kind:         raw.Kind,
		Position:     raw.Position,
		Color:        raw.Color,
		HasSwapColor: raw.HasSwapColor,
		SwapColor:    raw.SwapColor,
		Amount:       raw.Amount,
		Target:       raw.Target,
		MinRadius:    raw.MinRadius,
		BlockStart:   raw.BlockStart,
		BlockEnd:     raw.BlockEnd,
		BlockRadius:  raw.BlockRadius,
		HexFlip:      raw.HexFlip,
	}
}

func rawToObjective(raw RawElement, idMap map[int]int) (Objective, error) {
	switch raw.Kind {
	case ObjKindCrossedWires:
		return Objective{Kind: ObjCrossedWires}, nil
	case ObjKindSignalCount:
		return Objective{Kind: ObjSignalCount, N: raw.SignalTarget}, nil
	case ObjKindTargetValue:
		id, ok := idMap[raw.InformationTarget]
		if !ok {
			return Objective{}, errors.Errorf("transmission: objective references unknown element id %d", raw.InformationTarget)
		}
		return Objective{Kind: ObjTargetValue, ID: id}, nil
	default:
		return Objective{}, errors.Errorf("transmission: not an objective kind: %v", raw.Kind)
	}
}
