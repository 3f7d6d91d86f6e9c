package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes body as the response with the given status. Solve, analysis,
// position and health responses all go through here; errors are written by
// apierr instead. A nil body sends the status with an empty payload.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	// headers are already sent, so an encoding failure cannot be reported
	_ = json.NewEncoder(w).Encode(body)
}

