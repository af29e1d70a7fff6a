// Package httpadapter exposes the two solvers as a small JSON API,
// routed with chi the way the rest of the retrieved corpus routes its
// HTTP surfaces rather than a bare net/http.ServeMux. Request bodies
// are the same raw level text the CLIs consume; only the response is
// JSON.
package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v4"

	"svw.info/puzzles/internal/chrooma"
	chroomaparser "svw.info/puzzles/internal/parser/chrooma"
	transmissionparser "svw.info/puzzles/internal/parser/transmission"
	"svw.info/puzzles/internal/transmission"
	"svw.info/puzzles/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/chrooma/solve", h.handleChroomaSolve)
	r.Post("/api/transmission/solve", h.handleTransmissionSolve)
}

// solveResp is the shared response shape of both endpoints. Trace is one
// entry per move: a direction character for Chrooma, "src -> dst" for
// Transmission.
type solveResp struct {
	Steps      int      `json:"steps"`
	Trace      []string `json:"trace,omitempty"`
	Nodes      int      `json:"nodes"`
	DurationMs int64    `json:"durationMs"`
	Outcome    string   `json:"outcome,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp solveResp) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Chrooma ----

func chroomaOutcome(s chrooma.Status) string {
	switch s {
	case chrooma.StatusSuccess:
		return "solved"
	case chrooma.StatusStepLimitExceeded:
		return "limit_exceeded"
	default:
		return "no_solution"
	}
}

// handleChroomaSolve reads the raw grid text as the request body, the
// same format the CLI reads from stdin. An optional stepLimit query
// param overrides the default move cap.
func (h *Handler) handleChroomaSolve(w http.ResponseWriter, r *http.Request) {
	board, err := chroomaparser.ReadBoard(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	stepLimit, _ := strconv.Atoi(r.URL.Query().Get("stepLimit"))

	start := time.Now()
	res, err := h.UC.SolveChrooma(r.Context(), board, stepLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
		return
	}

	var trace []string
	for i := 1; i < len(res.Trace); i++ {
		trace = append(trace, string(res.Trace[i].Direction.Char()))
	}
	writeJSON(w, http.StatusOK, solveResp{
		Steps:      len(trace),
		Trace:      trace,
		Nodes:      res.Nodes,
		DurationMs: time.Since(start).Milliseconds(),
		Outcome:    chroomaOutcome(res.Status),
	})
}

// ---- Transmission ----

func transmissionOutcome(s transmission.Status) string {
	switch s {
	case transmission.StatusSuccess:
		return "solved"
	case transmission.StatusStepLimitExceeded:
		return "limit_exceeded"
	default:
		return "no_solution"
	}
}

// handleTransmissionSolve reads the level's XML-shaped lines as the
// request body and runs them through the same parser the CLI uses.
// Objective selection comes from the query string: all=1 attempts every
// objective in the level at once (the ALLOBJ behavior); otherwise each
// objective present is attempted in turn and the first solved attempt
// wins. An optional maxDepth query param bounds the search.
func (h *Handler) handleTransmissionSolve(w http.ResponseWriter, r *http.Request) {
	desc, err := transmissionparser.ReadLevel(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	lvl, err := transmission.BuildLevel(desc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	allObj := r.URL.Query().Get("all") == "1"
	maxDepth, _ := strconv.Atoi(r.URL.Query().Get("maxDepth"))

	start := time.Now()
	combos := transmission.AllObjectiveCombinations(lvl, allObj)
	best := transmission.Result{Status: transmission.StatusNoSolution}
	for _, obj := range combos {
		res, err := h.UC.SolveTransmission(r.Context(), lvl, obj, maxDepth)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
			return
		}
		best = res
		if res.Status == transmission.StatusSuccess {
			break
		}
	}

	var trace []string
	for _, step := range best.Trace {
		if step.From < 0 {
			continue
		}
		trace = append(trace, fmt.Sprintf("%d -> %d", step.From, step.To))
	}
	writeJSON(w, http.StatusOK, solveResp{
		Steps:      len(trace),
		Trace:      trace,
		Nodes:      best.Nodes,
		DurationMs: time.Since(start).Milliseconds(),
		Outcome:    transmissionOutcome(best.Status),
	})
}
