package transmission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "svw.info/puzzles/internal/transmission"
)

func TestReadLevelParsesElementsAndSkipsPlacedSignal(t *testing.T) {
	const doc = `<level version="1">
<element id="1" type="Transmitter" position="0,0,0" elementGroup="Cable" amount="1" />
<element id="2" type="Receiver" position="5,0,0" elementGroup="Cable" target="1" />
<element id="3" type="PlacedSignal" position="2,0,0" />
</level>`

	desc, err := ReadLevel(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, desc.Elements, 2)

	tx := desc.Elements[0]
	assert.Equal(t, domain.KindTransmitter, tx.Kind)
	assert.Equal(t, domain.Cable, tx.Color)
	assert.Equal(t, 1, tx.Amount)
	assert.Equal(t, domain.Point{X: 0, Y: 0}, tx.Position)

	rx := desc.Elements[1]
	assert.Equal(t, domain.KindReceiver, rx.Kind)
	assert.Equal(t, 1, rx.Target)
	assert.Equal(t, domain.Point{X: 5, Y: 0}, rx.Position)
}

func TestReadLevelParsesSwapperSwapGroups(t *testing.T) {
	const doc = `<element id="1" type="SwapperTransmitter" position="1,1,0" swapGroup1="Cable" swapGroup2="Fibre" target="1" amount="1" />`

	desc, err := ReadLevel(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, desc.Elements, 1)

	sw := desc.Elements[0]
	assert.Equal(t, domain.KindSwapperTransmitter, sw.Kind)
	assert.Equal(t, domain.Cable, sw.Color)
	assert.True(t, sw.HasSwapColor)
	assert.Equal(t, domain.Fibre, sw.SwapColor)
}

func TestReadLevelParsesObjectives(t *testing.T) {
	const doc = `<element id="9" type="ObjectiveSignalCount" signalTarget="7" />
<element id="10" type="ObjectiveTargetValue" informationTarget="2" />
<element id="11" type="ObjectiveCrossedWires" />`

	desc, err := ReadLevel(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, desc.Elements, 3)

	assert.Equal(t, domain.ObjKindSignalCount, desc.Elements[0].Kind)
	assert.Equal(t, 7, desc.Elements[0].SignalTarget)

	assert.Equal(t, domain.ObjKindTargetValue, desc.Elements[1].Kind)
	assert.Equal(t, 2, desc.Elements[1].InformationTarget)

	assert.Equal(t, domain.ObjKindCrossedWires, desc.Elements[2].Kind)
}

func TestReadLevelIgnoresUnknownElementType(t *testing.T) {
	const doc = `<element id="1" type="SomeFutureElement" position="0,0,0" />`

	desc, err := ReadLevel(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, desc.Elements)
}
