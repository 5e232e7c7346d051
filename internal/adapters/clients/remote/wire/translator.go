package wire

import (
	"fmt"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

// ToOperationRequest builds the request body for an operation call. A nil
// args slice is sent as an empty array.
func ToOperationRequest(args []any) OperationRequestDTO {
	if args == nil {
		args = []any{}
	}
	return OperationRequestDTO{Args: args}
}

// ToDomainDiagnostic converts a remote DiagnosticDTO to a domain Diagnostic.
// An unknown category maps to SeverityError. The message keeps its variant:
// a JSON string becomes plain text and an object becomes a chain.
func ToDomainDiagnostic(dto *DiagnosticDTO) (diagnostic.Diagnostic, error) {
	var msg diagnostic.Message
	if err := msg.UnmarshalJSON(dto.MessageText); err != nil {
		return diagnostic.Diagnostic{}, fmt.Errorf("messageText: %w", err)
	}

	severity, err := diagnostic.ParseSeverity(dto.Category)
	if err != nil {
		severity = diagnostic.SeverityError
	}

	return diagnostic.Diagnostic{
		Code:     dto.Code,
		Message:  msg,
		Severity: severity,
		File:     dto.File,
		Range: diagnostic.Range{
			Start: diagnostic.Position{Line: dto.Start.Line, Character: dto.Start.Character},
			End:   diagnostic.Position{Line: dto.End.Line, Character: dto.End.Character},
		},
		Source: dto.Source,
	}, nil
}

// ToDomainDiagnostics converts a DiagnosticsResponseDTO to a slice of domain
// diagnostics, preserving order. The first undecodable entry fails the whole
// response.
func ToDomainDiagnostics(dto DiagnosticsResponseDTO) ([]diagnostic.Diagnostic, error) {
	out := make([]diagnostic.Diagnostic, len(dto.Diagnostics))
	for i := range dto.Diagnostics {
		d, err := ToDomainDiagnostic(&dto.Diagnostics[i])
		if err != nil {
			return nil, fmt.Errorf("diagnostics[%d]: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}
