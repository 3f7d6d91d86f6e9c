package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/connect4-solver/internal/api/apierr"
	"github.com/mcoot/connect4-solver/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// A panic is answered with an INTERNAL_ERROR JSON body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
