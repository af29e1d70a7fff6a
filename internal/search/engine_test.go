package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// A trivial linear-chain problem: state N expands to N+1 (capped), goal is
// reaching target. Exercises dedup (every node has exactly one successor,
// so no cycles are possible, but the visited map must still not choke on
// the root) and trace reconstruction.
func TestEngineFindsShortestPath(t *testing.T) {
	target := 5
	expand := func(_ context.Context, payload any) ([]Successor, error) {
		n := payload.(int)
		if n >= target {
			return nil, nil
		}
		next := n + 1
		return []Successor{{
			Payload: next,
			Key:     fmt.Sprintf("%d", next),
			Move:    fmt.Sprintf("+%d", next),
		}}, nil
	}
	goal := func(payload any) bool { return payload.(int) == target }

	e := NewEngine()
	idx, outcome, stats, err := e.Run(context.Background(), 0, "0", expand, goal, -1)
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, outcome)
	require.Equal(t, target, stats.Depth)

	trace := e.Trace(idx)
	require.Len(t, trace, target+1)
	require.Equal(t, 0, trace[0].Payload)
	require.Equal(t, target, trace[len(trace)-1].Payload)
}

func TestEngineDepthLimitExceeded(t *testing.T) {
	expand := func(_ context.Context, payload any) ([]Successor, error) {
		n := payload.(int)
		next := n + 1
		return []Successor{{Payload: next, Key: fmt.Sprintf("%d", next), Move: "+"}}, nil
	}
	goal := func(any) bool { return false }

	e := NewEngine()
	_, outcome, _, err := e.Run(context.Background(), 0, "0", expand, goal, 3)
	require.NoError(t, err)
	require.Equal(t, OutcomeDepthLimitExceeded, outcome)
}

func TestEngineNoSolution(t *testing.T) {
	expand := func(context.Context, any) ([]Successor, error) { return nil, nil }
	goal := func(any) bool { return false }

	e := NewEngine()
	_, outcome, stats, err := e.Run(context.Background(), 0, "0", expand, goal, -1)
	require.NoError(t, err)
	require.Equal(t, OutcomeNoSolution, outcome)
	require.Equal(t, 1, stats.Expanded)
}

func TestEngineDeduplicatesRevisitedStates(t *testing.T) {
	// A diamond with a tail: 0 -> {1, 2} -> 3 -> 4. Both 1 and 2 reach
	// 3; 3 must be recorded and enqueued once, so when the goal 4 is found
	// the arena holds exactly one node per distinct state.
	expand := func(_ context.Context, payload any) ([]Successor, error) {
		switch payload.(int) {
		case 0:
			return []Successor{
				{Payload: 1, Key: "1", Move: "a"},
				{Payload: 2, Key: "2", Move: "b"},
			}, nil
		case 1, 2:
			return []Successor{{Payload: 3, Key: "3", Move: "c"}}, nil
		case 3:
			return []Successor{{Payload: 4, Key: "4", Move: "d"}}, nil
		default:
			return nil, nil
		}
	}
	goal := func(payload any) bool { return payload.(int) == 4 }

	e := NewEngine()
	idx, outcome, stats, err := e.Run(context.Background(), 0, "0", expand, goal, -1)
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, outcome)
	require.Equal(t, 3, stats.Depth)
	trace := e.Trace(idx)
	require.Len(t, trace, 4)
	require.Len(t, e.nodes, 5) // states 0, 1, 2, 3, 4, each once
}
