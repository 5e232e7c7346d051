// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// DiagnosticResponse represents a single diagnostic in HTTP responses.
// MessageText is a string for plain messages and an object for chains.
type DiagnosticResponse struct {
	Code        int                `json:"code"`
	Category    string             `json:"category"`
	MessageText diagnostic.Message `json:"messageText"`
	File        string             `json:"file,omitempty"`
	Range       RangePayload       `json:"range"`
	Source      string             `json:"source,omitempty"`
}

// ToDiagnosticResponse converts a domain Diagnostic to an HTTP response DTO.
func ToDiagnosticResponse(d *diagnostic.Diagnostic) DiagnosticResponse {
	return DiagnosticResponse{
		Code:        d.Code,
		Category:    d.Severity.String(),
		MessageText: d.Message,
		File:        d.File,
		Range: RangePayload{
			Start: PositionPayload{Line: d.Range.Start.Line, Character: d.Range.Start.Character},
			End:   PositionPayload{Line: d.Range.End.Line, Character: d.Range.End.Character},
		},
		Source: d.Source,
	}
}

// ToDiagnosticResponses converts a slice of domain diagnostics, preserving
// order.
func ToDiagnosticResponses(ds []diagnostic.Diagnostic) []DiagnosticResponse {
	out := make([]DiagnosticResponse, len(ds))
	for i := range ds {
		out[i] = ToDiagnosticResponse(&ds[i])
	}
	return out
}

// DiagnosticsResponse represents the diagnostics of one file.
type DiagnosticsResponse struct {
	File        string               `json:"file,omitempty"`
	Diagnostics []DiagnosticResponse `json:"diagnostics"`
	Count       int                  `json:"count"`
}

// ToDiagnosticsResponse converts a file's diagnostics to an HTTP response DTO.
func ToDiagnosticsResponse(file string, ds []diagnostic.Diagnostic) DiagnosticsResponse {
	items := ToDiagnosticResponses(ds)
	return DiagnosticsResponse{
		File:        file,
		Diagnostics: items,
		Count:       len(items),
	}
}

// BatchDiagnosticsResponse represents the result of a batch diagnostics
// request. It includes both successful files and per-file errors.
type BatchDiagnosticsResponse struct {
	Files     []DiagnosticsResponse `json:"files"`
	Errors    []BatchErrorItem      `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BatchErrorItem represents a single failed file within a batch request.
type BatchErrorItem struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// ToBatchDiagnosticsResponse converts a ports.BatchResult to an HTTP
// response DTO.
func ToBatchDiagnosticsResponse(result *ports.BatchResult) BatchDiagnosticsResponse {
	files := make([]DiagnosticsResponse, len(result.Files))
	for i := range result.Files {
		files[i] = ToDiagnosticsResponse(result.Files[i].File, result.Files[i].Diagnostics)
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			File:    e.File,
			Message: e.Err.Error(),
		}
	}

	return BatchDiagnosticsResponse{
		Files:     files,
		Errors:    errs,
		Total:     len(files) + len(errs),
		Succeeded: len(files),
		Failed:    len(errs),
	}
}

// ExplainItem describes how one diagnostic was classified.
type ExplainItem struct {
	Index       int                `json:"index"`
	Code        int                `json:"code"`
	Outcome     string             `json:"outcome"`
	Rule        string             `json:"rule,omitempty"`
	MessageText diagnostic.Message `json:"messageText"`
	Error       string             `json:"error,omitempty"`
}

// ExplainResponse lists per-diagnostic classifications and a count per
// outcome.
type ExplainResponse struct {
	Results  []ExplainItem  `json:"results"`
	Outcomes map[string]int `json:"outcomes"`
}

// ToExplainResponse pairs each input diagnostic with its classification.
// ds and results must have the same length.
func ToExplainResponse(ds []diagnostic.Diagnostic, results []rewrite.Result) ExplainResponse {
	items := make([]ExplainItem, len(results))
	outcomes := make(map[string]int)
	for i, res := range results {
		item := ExplainItem{
			Index:       i,
			Outcome:     res.Outcome.String(),
			Rule:        res.Rule,
			MessageText: res.Message,
		}
		if i < len(ds) {
			item.Code = ds[i].Code
		}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		items[i] = item
		outcomes[item.Outcome]++
	}
	return ExplainResponse{Results: items, Outcomes: outcomes}
}

// RuleResponse describes one rewrite rule.
type RuleResponse struct {
	Name        string `json:"name"`
	Code        *int   `json:"code,omitempty"`
	Contains    string `json:"contains"`
	Kind        string `json:"kind"`
	Replacement string `json:"replacement,omitempty"`
}

// RulesResponse describes the active rule set.
type RulesResponse struct {
	Gate     string         `json:"gate"`
	Rules    []RuleResponse `json:"rules"`
	Fallback *RuleResponse  `json:"fallback,omitempty"`
}

// ToRulesResponse converts a RuleSet to an HTTP response DTO. A nil set has
// an empty gate and no rules.
func ToRulesResponse(rs *rewrite.RuleSet) RulesResponse {
	if rs == nil {
		return RulesResponse{Rules: []RuleResponse{}}
	}

	rules := rs.Rules()
	resp := RulesResponse{
		Gate:  rs.Gate(),
		Rules: make([]RuleResponse, len(rules)),
	}
	for i := range rules {
		resp.Rules[i] = toRuleResponse(&rules[i])
	}
	if fb, ok := rs.Fallback(); ok {
		r := toRuleResponse(&fb)
		resp.Fallback = &r
	}
	return resp
}

func toRuleResponse(r *rewrite.Rule) RuleResponse {
	kind, text := rewrite.Describe(r.Replacement)
	return RuleResponse{
		Name:        r.Name,
		Code:        r.Code,
		Contains:    r.Contains,
		Kind:        kind,
		Replacement: text,
	}
}

// OperationResponse wraps the result of a forwarded backend operation.
// Intercepted diagnostics are rendered as DiagnosticResponse values; any
// other result is encoded as returned by the backend.
type OperationResponse struct {
	Operation string `json:"operation"`
	Result    any    `json:"result"`
}

// ToOperationResponse converts a backend result to an HTTP response DTO.
func ToOperationResponse(operation string, result any) OperationResponse {
	if ds, ok := result.([]diagnostic.Diagnostic); ok {
		result = ToDiagnosticResponses(ds)
	}
	return OperationResponse{Operation: operation, Result: result}
}
