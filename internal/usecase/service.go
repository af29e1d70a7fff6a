// Package usecase wires the two mechanics behind one service, the shape
// the HTTP adapter and the cmd binaries both depend on.
package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/chrooma"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/transmission"
)

type Service struct {
	Chrooma      ports.ChroomaSolver
	Transmission ports.TransmissionSolver
	Log          *logrus.Entry
}

func NewService(c ports.ChroomaSolver, t ports.TransmissionSolver, log *logrus.Entry) *Service {
	return &Service{Chrooma: c, Transmission: t, Log: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (s *Service) SolveChrooma(ctx context.Context, b *chrooma.Board, stepLimit int) (chrooma.Result, error) {
	if s.Chrooma == nil {
		return chrooma.Result{}, errNotConfigured
	}
	return s.Chrooma.Solve(ctx, b, stepLimit, s.Log)
}

func (s *Service) SolveTransmission(ctx context.Context, lvl *transmission.Level, obj transmission.Objectives, maxDepth int) (transmission.Result, error) {
	if s.Transmission == nil {
		return transmission.Result{}, errNotConfigured
	}
	return s.Transmission.Solve(ctx, lvl, obj, maxDepth, s.Log)
}
