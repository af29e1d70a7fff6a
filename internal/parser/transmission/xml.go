// Package transmission parses level files into a
// *transmission.LevelDescription, a thin boundary deliberately kept
// separate from the core. The level files are not well-formed XML, just
// one `<element .../>` tag per line, so this reads them with a regexp
// attribute-value scan rather than a real XML decoder.
package transmission

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	domain "svw.info/puzzles/internal/transmission"
)

var attrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)

// kindByName maps the type attribute to an element kind. The three
// objective kinds are handled separately; PlacedSignal and anything
// else unrecognized is ignored.
var kindByName = map[string]domain.ElementKind{
	"Transmitter":        domain.KindTransmitter,
	"Transceiver":        domain.KindTransceiver,
	"Receiver":           domain.KindReceiver,
	"RadialTransmitter":  domain.KindRadialTransmitter,
	"SwapperTransmitter": domain.KindSwapperTransmitter,
	"CellTransmitter":    domain.KindCellTransmitter,
	"SignalBooster":      domain.KindSignalBooster,
	"SignalBlock":        domain.KindSignalBlockLine,
	"SignalBlockCircle":  domain.KindSignalBlockCircle,
	"SignalBlockHexagon": domain.KindSignalBlockHexagon,
}

var groupByName = map[string]domain.ElementGroup{
	"Cable":    domain.Cable,
	"Exchange": domain.Exchange,
	"Fibre":    domain.Fibre,
	"Wave":     domain.Wave,
}

const (
	objectiveCrossedWires = "ObjectiveCrossedWires"
	objectiveSignalCount  = "ObjectiveSignalCount"
	objectiveTargetValue  = "ObjectiveTargetValue"
	placedSignal          = "PlacedSignal"
)

// ReadLevel reads one or more `<element .../>` lines (one per line, any
// surrounding `<level ...>`/`</level>` wrapper lines tolerated and
// skipped) and builds a LevelDescription. Unrecognized attributes are
// read and ignored; missing ones yield the zero value for that field,
// which at worst produces an unsolvable but well-formed level rather
// than a parse error.
func ReadLevel(r io.Reader) (domain.LevelDescription, error) {
	scanner := bufio.NewScanner(r)
	var desc domain.LevelDescription

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "<element") {
			continue
		}
		raw, skip, err := parseElementLine(line)
		if err != nil {
			return domain.LevelDescription{}, errors.Wrapf(err, "transmission: parsing %q", line)
		}
		if skip {
			continue
		}
		desc.Elements = append(desc.Elements, raw)
	}
	if err := scanner.Err(); err != nil {
		return domain.LevelDescription{}, errors.Wrap(err, "transmission: reading level")
	}
	return desc, nil
}

func parseElementLine(line string) (raw domain.RawElement, skip bool, err error) {
	attrs := map[string]string{}
	for _, m := range attrPattern.FindAllStringSubmatch(line, -1) {
		attrs[m[1]] = m[2]
	}

	typeName := attrs["type"]
	if typeName == placedSignal || typeName == "" {
		return domain.RawElement{}, true, nil
	}

	switch typeName {
	case objectiveCrossedWires:
		return domain.RawElement{ID: atoiDefault(attrs["id"], 0), Kind: domain.ObjKindCrossedWires}, false, nil
	case objectiveSignalCount:
		return domain.RawElement{
			ID:           atoiDefault(attrs["id"], 0),
			Kind:         domain.ObjKindSignalCount,
			SignalTarget: atoiDefault(attrs["signalTarget"], 0),
		}, false, nil
	case objectiveTargetValue:
		return domain.RawElement{
			ID:                atoiDefault(attrs["id"], 0),
			Kind:              domain.ObjKindTargetValue,
			InformationTarget: atoiDefault(attrs["informationTarget"], 0),
		}, false, nil
	}

	kind, known := kindByName[typeName]
	if !known {
		return domain.RawElement{}, true, nil // unknown element kind, ignored
	}

	raw = domain.RawElement{
		ID:        atoiDefault(attrs["id"], 0),
		Kind:      kind,
		Position:  parsePosition(attrs["position"]),
		Amount:    atoiDefault(attrs["amount"], 0),
		Target:    atoiDefault(attrs["target"], 0),
		MinRadius: atofDefault(attrs["minRadius"], 0),
	}

	if kind == domain.KindSwapperTransmitter {
		raw.Color = groupByName[attrs["swapGroup1"]]
		if sc, ok := groupByName[attrs["swapGroup2"]]; ok || attrs["swapGroup2"] != "" {
			raw.SwapColor = sc
			raw.HasSwapColor = true
		}
	} else {
		colorName := attrs["elementGroup"]
		if colorName == "" {
			colorName = attrs["blockGroup"]
		}
		raw.Color = groupByName[colorName]
	}

	switch kind {
	case domain.KindSignalBlockLine:
		raw.BlockStart = domain.Point{X: atofDefault(attrs["sx"], 0), Y: atofDefault(attrs["sy"], 0)}
		raw.BlockEnd = domain.Point{X: atofDefault(attrs["ex"], 0), Y: atofDefault(attrs["ey"], 0)}
	case domain.KindSignalBlockCircle:
		raw.BlockRadius = atofDefault(attrs["radius"], 0)
	case domain.KindSignalBlockHexagon:
		raw.BlockRadius = atofDefault(attrs["radius"], 0)
		raw.HexFlip = strings.EqualFold(attrs["flip"], "true")
	}

	return raw, false, nil
}

// parsePosition reads the "x,y" attribute; a trailing ",0" z-component
// is tolerated.
func parsePosition(s string) domain.Point {
	parts := strings.Split(s, ",")
	if len(parts) == 3 && strings.TrimSpace(parts[2]) == "0" {
		parts = parts[:2]
	}
	if len(parts) != 2 {
		return domain.Point{}
	}
	return domain.Point{X: atofDefault(parts[0], 0), Y: atofDefault(parts[1], 0)}
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func atofDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}
