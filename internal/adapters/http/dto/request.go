package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// InvokeRequest represents the JSON body for forwarding an operation to the
// backend. Args may be omitted for operations without arguments.
type InvokeRequest struct {
	Args []any `json:"args"`
}

// Validate always succeeds; argument shape is the backend's concern.
func (r *InvokeRequest) Validate() error {
	return nil
}

// DiagnosticsRequest represents the JSON body for fetching diagnostics for
// one file.
type DiagnosticsRequest struct {
	File string `json:"file"`
}

// Validate checks that the file is present.
func (r *DiagnosticsRequest) Validate() error {
	if strings.TrimSpace(r.File) == "" {
		return domain.NewValidationError("file", msgRequired)
	}
	return nil
}

// BatchDiagnosticsRequest represents the JSON body for fetching diagnostics
// for several files.
type BatchDiagnosticsRequest struct {
	Files []string `json:"files"`
}

// Validate checks that at least one file is given and that none is blank.
func (r *BatchDiagnosticsRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Files) == 0 {
		fields["files"] = msgMustNotEmpty
	}
	for i, f := range r.Files {
		if strings.TrimSpace(f) == "" {
			fields[fmt.Sprintf("files[%d]", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// PositionPayload is a zero-based line/character pair.
type PositionPayload struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// RangePayload is a half-open span between two positions.
type RangePayload struct {
	Start PositionPayload `json:"start"`
	End   PositionPayload `json:"end"`
}

// DiagnosticPayload is a diagnostic supplied by the caller. MessageText is
// either a string or a message chain object; Category is a severity name.
type DiagnosticPayload struct {
	Code        int             `json:"code"`
	Category    string          `json:"category,omitempty"`
	MessageText json.RawMessage `json:"messageText"`
	File        string          `json:"file,omitempty"`
	Range       RangePayload    `json:"range"`
	Source      string          `json:"source,omitempty"`
}

// RewriteRequest represents the JSON body for rewriting or explaining
// caller-supplied diagnostics.
type RewriteRequest struct {
	Diagnostics []DiagnosticPayload `json:"diagnostics"`
}

// Validate checks that diagnostics are present and that each one has a
// decodable message and a known category.
func (r *RewriteRequest) Validate() error {
	fields := make(map[string]string)

	if r.Diagnostics == nil {
		fields["diagnostics"] = msgRequired
	}
	for i := range r.Diagnostics {
		d := &r.Diagnostics[i]
		prefix := fmt.Sprintf("diagnostics[%d]", i)

		if len(d.MessageText) == 0 {
			fields[prefix+".messageText"] = msgRequired
		} else {
			var m diagnostic.Message
			if err := m.UnmarshalJSON(d.MessageText); err != nil {
				fields[prefix+".messageText"] = err.Error()
			}
		}
		if _, err := diagnostic.ParseSeverity(d.Category); err != nil {
			fields[prefix+".category"] = fmt.Sprintf("invalid: %q", d.Category)
		}
		if d.Code < 0 {
			fields[prefix+".code"] = fmt.Sprintf("must not be negative, got %d", d.Code)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to domain diagnostics.
func (r *RewriteRequest) ToDomain() []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, len(r.Diagnostics))
	for i := range r.Diagnostics {
		out[i] = ToDomainDiagnostic(&r.Diagnostics[i])
	}
	return out
}

// ToDomainDiagnostic converts a validated payload to a domain Diagnostic.
func ToDomainDiagnostic(p *DiagnosticPayload) diagnostic.Diagnostic {
	var msg diagnostic.Message
	_ = msg.UnmarshalJSON(p.MessageText)
	severity, _ := diagnostic.ParseSeverity(p.Category)

	return diagnostic.Diagnostic{
		Code:     p.Code,
		Message:  msg,
		Severity: severity,
		File:     p.File,
		Range: diagnostic.Range{
			Start: diagnostic.Position{Line: p.Range.Start.Line, Character: p.Range.Start.Character},
			End:   diagnostic.Position{Line: p.Range.End.Line, Character: p.Range.End.Character},
		},
		Source: p.Source,
	}
}
