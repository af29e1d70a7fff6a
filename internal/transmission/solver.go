package transmission

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DefaultSolver adapts the package-level Solve function to
// ports.TransmissionSolver for dependency injection into the usecase
// layer.
type DefaultSolver struct{}

func (DefaultSolver) Solve(ctx context.Context, lvl *Level, obj Objectives, maxDepth int, log *logrus.Entry) (Result, error) {
	return Solve(ctx, lvl, obj, maxDepth, log)
}
