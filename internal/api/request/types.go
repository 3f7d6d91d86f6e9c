package request

// SolveRequest is the request body for solving a position.
// Sequence holds 1-indexed column digits; Mode is "strong" (default) or "weak".
type SolveRequest struct {
	Sequence string `json:"sequence"`
	Mode     string `json:"mode,omitempty"`
}

// AnalyzeRequest is the request body for scoring every move of a position
type AnalyzeRequest struct {
	Sequence string `json:"sequence"`
	Mode     string `json:"mode,omitempty"`
}

// FieldRequest is the request body for loading a position from a board
// field. When Analyze is set the response includes a move analysis.
type FieldRequest struct {
	Field   string `json:"field"`
	Analyze bool   `json:"analyze,omitempty"`
	Mode    string `json:"mode,omitempty"`
}
