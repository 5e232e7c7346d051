// Package wire implements the Anti-Corruption Layer translators for the
// remote analysis service's operation and diagnostics payloads.
package wire

import "encoding/json"

// OperationRequestDTO is the body of POST /api/v1/operations/{operation}.
// Args is never null on the wire.
type OperationRequestDTO struct {
	Args []any `json:"args"`
}

// DiagnosticsResponseDTO is the response body of the semantic diagnostics
// operation.
type DiagnosticsResponseDTO struct {
	Diagnostics []DiagnosticDTO `json:"diagnostics"`
}

// DiagnosticDTO matches the remote Diagnostic schema. Positions are flat
// start/end pairs and the category is a lowercase name.
type DiagnosticDTO struct {
	Code        int             `json:"code"`
	Category    string          `json:"category"`
	MessageText json.RawMessage `json:"messageText"`
	File        string          `json:"file,omitempty"`
	Start       PositionDTO     `json:"start"`
	End         PositionDTO     `json:"end"`
	Source      string          `json:"source,omitempty"`
}

// PositionDTO is a zero-based line/character pair.
type PositionDTO struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}
