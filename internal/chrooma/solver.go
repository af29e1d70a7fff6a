package chrooma

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DefaultSolver adapts the package-level Solve function to
// ports.ChroomaSolver for dependency injection into the usecase layer.
type DefaultSolver struct{}

func (DefaultSolver) Solve(ctx context.Context, b *Board, stepLimit int, log *logrus.Entry) (Result, error) {
	return Solve(ctx, b, stepLimit, log)
}
