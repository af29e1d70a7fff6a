package chrooma

import (
	"context"

	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/search"
)

// DefaultStepLimit is the default search depth bound passed to Solve.
const DefaultStepLimit = 10

// Status is the outer, process-facing result.
type Status int

const (
	StatusSuccess Status = iota
	StatusNoSolution
	StatusStepLimitExceeded
)

// Result bundles everything cmd/chrooma-solver needs to print.
type Result struct {
	Status Status
	Trace  []TraceStep // root-to-goal, empty unless Status == StatusSuccess
	Nodes  int
	Depth  int
}

// TraceStep is one printed line of the solution trace.
type TraceStep struct {
	Direction Direction
	Board     *State
}

// Solve runs BFS over Step from board's initial layout. States up to
// stepLimit moves deep are expanded and their successors goal-checked, so
// a winning sequence of stepLimit+1 moves is still found; the step limit
// is reported as exceeded only when no win turns up.
func Solve(ctx context.Context, board *Board, stepLimit int, log *logrus.Entry) (Result, error) {
	if stepLimit <= 0 {
		stepLimit = DefaultStepLimit
	}
	initial := board.InitialState()

	expand := func(ctx context.Context, payload any) ([]search.Successor, error) {
		cur := payload.(*State)
		successors := make([]search.Successor, 0, len(AllDirections))
		for _, d := range AllDirections {
			res, err := Step(ctx, board, cur, d)
			if err != nil {
				return nil, err
			}
			if res.Outcome == Failed {
				successors = append(successors, search.Successor{Dead: true})
				continue
			}
			successors = append(successors, search.Successor{
				Payload: res.Next,
				Key:     string(res.Next.CanonicalBytes()),
				Move:    string(d.Char()),
			})
		}
		return successors, nil
	}

	goal := func(payload any) bool {
		return payload.(*State).BallCount() == 0
	}

	engine := search.NewEngine()
	idx, outcome, stats, err := engine.Run(ctx, initial, string(initial.CanonicalBytes()), expand, goal, stepLimit)
	if err != nil {
		return Result{}, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"nodes": stats.Expanded,
			"depth": stats.Depth,
		}).Debug("chrooma search finished")
	}

	switch outcome {
	case search.OutcomeSolved:
		nodes := engine.Trace(idx)
		trace := make([]TraceStep, 0, len(nodes))
		for _, n := range nodes {
			st, _ := n.Payload.(*State)
			var dir Direction
			if n.Move != "" {
				d, _ := directionFromChar(n.Move[0])
				dir = d
			}
			trace = append(trace, TraceStep{Direction: dir, Board: st})
		}
		return Result{Status: StatusSuccess, Trace: trace, Nodes: stats.Expanded, Depth: stats.Depth}, nil
	case search.OutcomeDepthLimitExceeded:
		return Result{Status: StatusStepLimitExceeded, Nodes: stats.Expanded, Depth: stats.Depth}, nil
	default:
		return Result{Status: StatusNoSolution, Nodes: stats.Expanded, Depth: stats.Depth}, nil
	}
}
