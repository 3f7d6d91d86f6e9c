package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/connect4-solver/internal/api/request"
	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/model"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// PositionHandler handles position inspection endpoints
type PositionHandler struct {
	solverService *solver.Service
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(solverService *solver.Service) *PositionHandler {
	return &PositionHandler{
		solverService: solverService,
	}
}

// Get handles GET /api/v1/position?moves=...
func (h *PositionHandler) Get(w http.ResponseWriter, r *http.Request) {
	seq := r.URL.Query().Get("moves")

	pos, err := model.PositionFromMoves(seq)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PositionFromModel(pos, seq))
}

// FromField handles POST /api/v1/position/field
func (h *PositionHandler) FromField(w http.ResponseWriter, r *http.Request) {
	var req request.FieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Field == "" {
		WriteError(w, NewInvalidRequestError("field is required"))
		return
	}

	pos, err := model.PositionFromField(req.Field)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.PositionFromModel(pos, "")
	if req.Analyze {
		analysis, err := h.solverService.AnalyzePosition(r.Context(), pos, "", req.Mode)
		if err != nil {
			WriteError(w, err)
			return
		}
		a := response.AnalysisFromModel(analysis)
		resp.Analysis = &a
	}

	response.JSON(w, http.StatusOK, resp)
}
