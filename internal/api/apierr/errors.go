package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mcoot/connect4-solver/internal/model"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidMove    = "INVALID_MOVE"
	CodeInvalidField   = "INVALID_FIELD"
	CodeInvalidMode    = "INVALID_MODE"
	CodeSolveTimeout   = "SOLVE_TIMEOUT"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var moveErr *model.InvalidMoveError
	if errors.As(err, &moveErr) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, moveErr.Error()}}
	}

	var fieldErr *model.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidField, fieldErr.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrInvalidMode):
		return &httpError{http.StatusBadRequest, APIError{
			CodeInvalidMode,
			fmt.Sprintf("mode must be one of: %s", strings.Join(model.ValidModes(), ", ")),
		}}
	case errors.Is(err, solver.ErrSolveTimeout):
		return &httpError{http.StatusGatewayTimeout, APIError{CodeSolveTimeout, "Solve did not finish before the deadline"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
