package transmission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLevel(t *testing.T, raws ...RawElement) *Level {
	t.Helper()
	lvl, err := BuildLevel(LevelDescription{Elements: raws})
	require.NoError(t, err)
	return lvl
}

func TestSimpleWireDeliversPacket(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 3},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 5, Y: 0}, Color: Cable, Target: 3},
	)
	st := NewInitialState(lvl)
	obj := ResolveObjectives(lvl)

	require.True(t, canConnectNow(lvl, st, obj, 0, 1))
	ApplyConnection(lvl, st, 0, 1)

	assert.Equal(t, 3, st.Amounts[1])
	assert.True(t, WinPredicate(lvl, st, obj))
}

func TestColorMismatchBlocksConnection(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 1},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 5, Y: 0}, Color: Fibre, Target: 1},
	)
	st := NewInitialState(lvl)
	obj := ResolveObjectives(lvl)
	assert.False(t, canConnectNow(lvl, st, obj, 0, 1))
}

func TestBoosterDoublesOutput(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 4},
		RawElement{ID: 2, Kind: KindSignalBooster, Position: Point{X: 5, Y: 0}, Color: Cable},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 10, Y: 0}, Color: Cable, Target: 8},
	)
	st := NewInitialState(lvl)
	obj := ResolveObjectives(lvl)

	ApplyConnection(lvl, st, 0, 1)
	require.Equal(t, 8, st.Left[1])

	require.True(t, canConnectNow(lvl, st, obj, 1, 2))
	ApplyConnection(lvl, st, 1, 2)

	assert.Equal(t, 8, st.Amounts[2])
	assert.True(t, WinPredicate(lvl, st, obj))
}

func TestCellTransmitterPoolStaysInSync(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Exchange, Amount: 5},
		RawElement{ID: 2, Kind: KindCellTransmitter, Position: Point{X: 3, Y: 0}, Color: Exchange},
		RawElement{ID: 3, Kind: KindCellTransmitter, Position: Point{X: 6, Y: 0}, Color: Exchange},
		RawElement{ID: 4, Kind: KindReceiver, Position: Point{X: 9, Y: 0}, Color: Exchange, Target: 5},
	)
	st := NewInitialState(lvl)

	ApplyConnection(lvl, st, 0, 1)
	assert.Equal(t, st.Amounts[1], st.Amounts[2])
	assert.Equal(t, st.Left[1], st.Left[2])
}

func TestSwapperLocksColorOnFirstConnection(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 2},
		RawElement{ID: 2, Kind: KindSwapperTransmitter, Position: Point{X: 5, Y: 0}, Color: Cable, HasSwapColor: true, SwapColor: Exchange, Target: 2},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 10, Y: 0}, Color: Exchange, Target: 2},
	)
	st := NewInitialState(lvl)
	obj := ResolveObjectives(lvl)

	ApplyConnection(lvl, st, 0, 1)
	assert.Equal(t, int8(1), st.ColorSwapped[1])
	assert.Equal(t, Exchange, emittedColor(lvl, st, 1))

	require.True(t, canConnectNow(lvl, st, obj, 1, 2))
	ApplyConnection(lvl, st, 1, 2)
	assert.True(t, WinPredicate(lvl, st, obj))
}

func TestRadialTransmitterBroadcastsWithinRadius(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Wave, Amount: 4},
		RawElement{ID: 2, Kind: KindRadialTransmitter, Position: Point{X: 5, Y: 0}, Color: Wave, MinRadius: 3},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 6, Y: 0}, Color: Wave, Target: 4},
	)
	st := NewInitialState(lvl)

	ApplyConnection(lvl, st, 0, 1)
	assert.Equal(t, 4, st.Amounts[2])
	assert.Equal(t, 4, st.Amounts[2])
	assert.GreaterOrEqual(t, st.Connected[1][2], 4)
}

func TestSolveBoosterChainFeedsTwoReceivers(t *testing.T) {
	// One packet in, doubled by the booster, split across two receivers.
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 1},
		RawElement{ID: 2, Kind: KindSignalBooster, Position: Point{X: 5, Y: 0}, Color: Cable},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 10, Y: 5}, Color: Cable, Target: 1},
		RawElement{ID: 4, Kind: KindReceiver, Position: Point{X: 10, Y: -5}, Color: Cable, Target: 1},
	)
	obj := ResolveObjectives(lvl)
	res, err := Solve(context.Background(), lvl, obj, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Len(t, res.Trace, 4) // initial + three connections
}

func TestSignalCountObjectiveBoundsSearchDepth(t *testing.T) {
	// Satisfying both receivers needs two connections; a signal budget
	// of one cuts the search off first.
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 2},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 10, Y: 5}, Color: Cable, Target: 1},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 10, Y: -5}, Color: Cable, Target: 1},
	)
	obj := Objectives{SignalCount: 1, TargetValue: -1}
	res, err := Solve(context.Background(), lvl, obj, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusStepLimitExceeded, res.Status)

	obj.SignalCount = 2
	res, err = Solve(context.Background(), lvl, obj, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
}

func TestFlowBalanceAndAntiParallelInvariants(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 3},
		RawElement{ID: 2, Kind: KindTransceiver, Position: Point{X: 5, Y: 0}, Color: Cable, Amount: 1, Target: 4},
		RawElement{ID: 3, Kind: KindReceiver, Position: Point{X: 10, Y: 0}, Color: Cable, Target: 5},
	)
	st := NewInitialState(lvl)

	ApplyConnection(lvl, st, 0, 1)
	ApplyConnection(lvl, st, 1, 2)

	for i, e := range lvl.Elements {
		incoming, outgoing := 0, 0
		for j := range lvl.Elements {
			incoming += st.Connected[j][i]
			outgoing += st.Connected[i][j]
			if st.Connected[i][j] > 0 {
				assert.Zero(t, st.Connected[j][i], "anti-parallel edge %d<->%d", i, j)
			}
		}
		assert.Equal(t, e.Amount+incoming, st.Amounts[i], "amounts balance for %d", i)
		assert.Equal(t, st.Amounts[i]-outgoing, st.Left[i], "left balance for %d", i)
	}
}

func TestSolveSingleWireLevel(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 2},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 5, Y: 0}, Color: Cable, Target: 2},
	)
	obj := ResolveObjectives(lvl)
	res, err := Solve(context.Background(), lvl, obj, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Len(t, res.Trace, 2)
}

func TestSolveUnreachableReceiverHasNoSolution(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 2},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 5, Y: 0}, Color: Fibre, Target: 2},
	)
	obj := ResolveObjectives(lvl)
	res, err := Solve(context.Background(), lvl, obj, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusNoSolution, res.Status)
}

func TestNoCrossingWiresObjectiveBlocksDiagonalCross(t *testing.T) {
	lvl := mustLevel(t,
		RawElement{ID: 1, Kind: KindTransmitter, Position: Point{X: 0, Y: 0}, Color: Cable, Amount: 1},
		RawElement{ID: 2, Kind: KindReceiver, Position: Point{X: 10, Y: 10}, Color: Cable, Target: 1},
		RawElement{ID: 3, Kind: KindTransmitter, Position: Point{X: 0, Y: 10}, Color: Cable, Amount: 1},
		RawElement{ID: 4, Kind: KindReceiver, Position: Point{X: 10, Y: 0}, Color: Cable, Target: 1},
	)
	st := NewInitialState(lvl)
	obj := Objectives{CrossedWires: true, TargetValue: -1}

	require.True(t, canConnectNow(lvl, st, obj, 0, 1))
	ApplyConnection(lvl, st, 0, 1)

	assert.False(t, canConnectNow(lvl, st, obj, 2, 3))
}
