package transmission

import (
	"context"

	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/search"
)

type Status int

const (
	StatusSuccess Status = iota
	StatusNoSolution
	StatusStepLimitExceeded
)

type TraceStep struct {
	From, To int // element ids, -1 for the initial node
	State    *State
}

type Result struct {
	Status Status
	Trace  []TraceStep
	Nodes  int
	Depth  int
}

// payload bundles a State with the level and objectives it was built
// against, since ExpandFunc/GoalFunc only receive the payload.
type payload struct {
	lvl *Level
	obj Objectives
	st  *State
}

// Solve runs the connect-and-flow BFS: every legal (i, j) connection is
// a move, states dedup on CanonicalBytes, and the goal is WinPredicate
// under obj. maxDepth <= 0 means unbounded; an active SignalCount
// objective always caps the depth regardless.
func Solve(ctx context.Context, lvl *Level, obj Objectives, maxDepth int, log *logrus.Entry) (Result, error) {
	// The engine still expands nodes sitting at its bound and win-checks
	// their children, so a SignalCount of n maps to bound n-1: nodes
	// holding n connections are never expanded, solutions using exactly
	// n still surface.
	limit := maxDepth
	if limit <= 0 {
		limit = -1
	}
	if obj.SignalCount > 0 {
		scLimit := obj.SignalCount - 1
		if limit < 0 || scLimit < limit {
			limit = scLimit
		}
	}

	init := NewInitialState(lvl)
	initP := payload{lvl: lvl, obj: obj, st: init}

	expand := func(ctx context.Context, p any) ([]search.Successor, error) {
		cur := p.(payload)
		conns := GetAvailableConnections(cur.lvl, cur.st, cur.obj)
		successors := make([]search.Successor, 0, len(conns))
		for _, c := range conns {
			next := cur.st.Clone()
			ApplyConnection(cur.lvl, next, c[0], c[1])
			successors = append(successors, search.Successor{
				Payload: payload{lvl: cur.lvl, obj: cur.obj, st: next},
				Key:     string(next.CanonicalBytes()),
				Move:    connMove(c[0], c[1]),
			})
		}
		return successors, nil
	}

	goal := func(p any) bool {
		cur := p.(payload)
		return WinPredicate(cur.lvl, cur.st, cur.obj)
	}

	eng := search.NewEngine()
	idx, outcome, stats, err := eng.Run(ctx, initP, string(init.CanonicalBytes()), expand, goal, limit)
	if err != nil {
		return Result{}, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{"nodes": stats.Expanded, "depth": stats.Depth}).Debug("transmission search finished")
	}

	res := Result{Nodes: stats.Expanded, Depth: stats.Depth}
	switch outcome {
	case search.OutcomeSolved:
		res.Status = StatusSuccess
	case search.OutcomeDepthLimitExceeded:
		res.Status = StatusStepLimitExceeded
	default:
		res.Status = StatusNoSolution
		return res, nil
	}

	for _, n := range eng.Trace(idx) {
		from, to := -1, -1
		if n.Move != "" {
			from, to = parseConnMove(n.Move)
		}
		res.Trace = append(res.Trace, TraceStep{From: from, To: to, State: n.Payload.(payload).st})
	}
	return res, nil
}
