// Package ports declares the solver interfaces the usecase layer depends
// on, so the concrete chrooma and transmission solvers are injected into
// usecase.Service rather than called by it directly.
package ports

import (
	"context"

	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/chrooma"
	"svw.info/puzzles/internal/transmission"
)

// Stats reports a solve's node count and, for depth-bounded searches,
// the depth reached.
type Stats struct {
	Nodes int
	Depth int
}

// ChroomaSolver solves one parsed board.
type ChroomaSolver interface {
	Solve(ctx context.Context, b *chrooma.Board, stepLimit int, log *logrus.Entry) (chrooma.Result, error)
}

// TransmissionSolver solves one built level under a chosen objective
// combination.
type TransmissionSolver interface {
	Solve(ctx context.Context, lvl *transmission.Level, obj transmission.Objectives, maxDepth int, log *logrus.Entry) (transmission.Result, error)
}
