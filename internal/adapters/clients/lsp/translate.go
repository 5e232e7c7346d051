package lsp

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

// LSP severities. Hint maps to Suggestion; Information maps to Message.
const (
	lspSeverityError       = 1
	lspSeverityWarning     = 2
	lspSeverityInformation = 3
	lspSeverityHint        = 4
)

func toDomain(file string, items []lspDiagnostic) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(items))
	for _, it := range items {
		out = append(out, diagnostic.Diagnostic{
			Code:     parseCode(it.Code),
			Message:  diagnostic.Text(it.Message),
			Severity: toSeverity(it.Severity),
			File:     file,
			Range: diagnostic.Range{
				Start: diagnostic.Position{Line: it.Range.Start.Line, Character: it.Range.Start.Character},
				End:   diagnostic.Position{Line: it.Range.End.Line, Character: it.Range.End.Character},
			},
			Source: it.Source,
		})
	}
	return out
}

// parseCode accepts a numeric code or a string such as "2345" or "TS2345".
// Anything else yields 0.
func parseCode(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	s = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "TS")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func toSeverity(s int) diagnostic.Severity {
	switch s {
	case lspSeverityError:
		return diagnostic.SeverityError
	case lspSeverityWarning:
		return diagnostic.SeverityWarning
	case lspSeverityInformation:
		return diagnostic.SeverityMessage
	case lspSeverityHint:
		return diagnostic.SeveritySuggestion
	default:
		return diagnostic.SeverityError
	}
}
