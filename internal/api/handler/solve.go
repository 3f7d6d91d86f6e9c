package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/connect4-solver/internal/api/request"
	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// SolveHandler handles solving and move analysis endpoints
type SolveHandler struct {
	solverService *solver.Service
}

// NewSolveHandler creates a new solve handler
func NewSolveHandler(solverService *solver.Service) *SolveHandler {
	return &SolveHandler{
		solverService: solverService,
	}
}

// Solve handles POST /api/v1/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.solverService.Solve(r.Context(), req.Sequence, req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolveFromModel(result))
}

// Analyze handles POST /api/v1/analyze
func (h *SolveHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	analysis, err := h.solverService.AnalyzeMoves(r.Context(), req.Sequence, req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(analysis))
}
