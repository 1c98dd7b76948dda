package server

import (
	"github.com/katalvlaran/algoviz/complexity"
	"github.com/katalvlaran/algoviz/step"
)

// Error codes carried by ErrorResponse.Code.
const (
	CodeUnknownAlgorithm = "UNKNOWN_ALGORITHM"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeLimitExceeded    = "LIMIT_EXCEEDED"
)

// HeaderRequestID carries the per-request correlation ID.
const HeaderRequestID = "X-Request-ID"

// TraceResponse is the body of every successful trace request.
type TraceResponse struct {
	Steps      step.Trace            `json:"steps"`
	Complexity complexity.Descriptor `json:"complexity"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable message.
	Error string `json:"error"`

	// Code is one of the Code* constants.
	Code string `json:"code,omitempty"`
}

// AlgorithmsResponse lists every traceable variant and the fixture
// generators the trace endpoints accept through "generate".
type AlgorithmsResponse struct {
	Families   map[string][]string `json:"families"`
	Generators GeneratorsInfo      `json:"generators"`
}

// GeneratorsInfo names the builder sequences and shapes.
type GeneratorsInfo struct {
	Sequences []string `json:"sequences"`
	Shapes    []string `json:"shapes"`
	Trees     []string `json:"trees"`
}

// StreamDone is the last websocket message of a stream.
type StreamDone struct {
	Done       bool                  `json:"done"`
	Steps      int                   `json:"steps"`
	Complexity complexity.Descriptor `json:"complexity"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
