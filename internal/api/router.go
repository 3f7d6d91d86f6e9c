package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/connect4-solver/internal/api/handler"
	"github.com/mcoot/connect4-solver/internal/api/middleware"
	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/dependencies/clock"
	sharedmw "github.com/mcoot/connect4-solver/internal/middleware"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Clock         clock.Clock
	SolverService *solver.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	solveHandler := handler.NewSolveHandler(cfg.SolverService)
	positionHandler := handler.NewPositionHandler(cfg.SolverService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger, cfg.Clock))

	api.HandleFunc("/solve", solveHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/analyze", solveHandler.Analyze).Methods(http.MethodPost)

	api.HandleFunc("/position", positionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/position/field", positionHandler.FromField).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
