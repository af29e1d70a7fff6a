// Command puzzle-api wires both solvers behind a small chi-routed HTTP
// service, so levels can be solved over JSON as well as from the CLIs.
package main

import (
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/go-chi/chi/v4"
	"github.com/sirupsen/logrus"

	httpadapter "svw.info/puzzles/internal/adapters/http"
	"svw.info/puzzles/internal/chrooma"
	"svw.info/puzzles/internal/cliutil"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/transmission"
	"svw.info/puzzles/internal/usecase"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelName := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	log := cliutil.NewLogger(*levelName)

	var chroomaSolver ports.ChroomaSolver = chrooma.DefaultSolver{}
	var transmissionSolver ports.TransmissionSolver = transmission.DefaultSolver{}
	uc := usecase.NewService(chroomaSolver, transmissionSolver, log.WithField("component", "usecase"))
	h := httpadapter.New(uc)

	r := chi.NewRouter()
	h.Register(r)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           cliutil.RequestLogger(log, r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{"addr": *addr}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server error")
	}
}
