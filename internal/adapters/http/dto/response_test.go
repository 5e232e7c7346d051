package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/brandgate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

func sampleDiagnostic() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Code:     2345,
		Message:  diagnostic.Text(brandMessage),
		Severity: diagnostic.SeverityError,
		File:     "src/users.ts",
		Range: diagnostic.Range{
			Start: diagnostic.Position{Line: 1, Character: 2},
			End:   diagnostic.Position{Line: 1, Character: 8},
		},
		Source: "ts",
	}
}

func TestToDiagnosticResponse_JSONShape(t *testing.T) {
	t.Parallel()

	d := sampleDiagnostic()
	body, err := json.Marshal(dto.ToDiagnosticResponse(&d))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["category"] != "error" {
		t.Errorf("category = %v, want error", got["category"])
	}
	if got["messageText"] != brandMessage {
		t.Errorf("messageText = %v, want plain string", got["messageText"])
	}
	if got["code"] != float64(2345) {
		t.Errorf("code = %v, want 2345", got["code"])
	}
}

func TestToDiagnosticResponse_ChainStaysObject(t *testing.T) {
	t.Parallel()

	d := sampleDiagnostic()
	d.Message = diagnostic.Chain(diagnostic.MessageChain{Text: "outer"})

	body, err := json.Marshal(dto.ToDiagnosticResponse(&d))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got struct {
		MessageText map[string]any `json:"messageText"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v (messageText should be an object)", err)
	}
	if got.MessageText["messageText"] != "outer" {
		t.Errorf("messageText.messageText = %v, want outer", got.MessageText["messageText"])
	}
}

func TestToBatchDiagnosticsResponse_Counts(t *testing.T) {
	t.Parallel()

	result := &ports.BatchResult{
		Files: []ports.FileDiagnostics{
			{File: "a.ts", Diagnostics: []diagnostic.Diagnostic{sampleDiagnostic()}},
			{File: "b.ts", Diagnostics: nil},
		},
		Errors: []ports.BatchError{{File: "c.ts", Err: errors.New("not found")}},
	}

	got := dto.ToBatchDiagnosticsResponse(result)

	if got.Total != 3 || got.Succeeded != 2 || got.Failed != 1 {
		t.Errorf("Total/Succeeded/Failed = %d/%d/%d, want 3/2/1", got.Total, got.Succeeded, got.Failed)
	}
	if got.Files[0].Count != 1 || got.Files[1].Count != 0 {
		t.Errorf("Files counts = %d,%d, want 1,0", got.Files[0].Count, got.Files[1].Count)
	}
	if got.Files[1].Diagnostics == nil {
		t.Error("Files[1].Diagnostics = nil, want empty slice so it encodes as []")
	}
	if got.Errors[0].File != "c.ts" || got.Errors[0].Message != "not found" {
		t.Errorf("Errors[0] = %+v", got.Errors[0])
	}
}

func TestToExplainResponse(t *testing.T) {
	t.Parallel()

	ds := []diagnostic.Diagnostic{sampleDiagnostic(), sampleDiagnostic()}
	ds[1].Code = 2322
	results := []rewrite.Result{
		{Outcome: rewrite.OutcomeRewritten, Rule: rewrite.RuleArgumentNotAssignable, Message: diagnostic.Text("explained")},
		{Outcome: rewrite.OutcomeFailed, Rule: "custom", Message: ds[1].Message, Err: rewrite.ErrReplacementFailed},
	}

	got := dto.ToExplainResponse(ds, results)

	if len(got.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(got.Results))
	}
	if got.Results[0].Outcome != "rewritten" || got.Results[0].Rule != rewrite.RuleArgumentNotAssignable {
		t.Errorf("Results[0] = %+v", got.Results[0])
	}
	if got.Results[1].Code != 2322 || got.Results[1].Error == "" {
		t.Errorf("Results[1] = %+v, want code 2322 with error", got.Results[1])
	}
	if got.Outcomes["rewritten"] != 1 || got.Outcomes["failed"] != 1 {
		t.Errorf("Outcomes = %v, want rewritten:1 failed:1", got.Outcomes)
	}
}

func TestToRulesResponse_Default(t *testing.T) {
	t.Parallel()

	got := dto.ToRulesResponse(rewrite.Default())

	if got.Gate != rewrite.BrandMarker {
		t.Errorf("Gate = %q, want %q", got.Gate, rewrite.BrandMarker)
	}
	if len(got.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(got.Rules))
	}
	if got.Rules[0].Code == nil || *got.Rules[0].Code != 2345 {
		t.Errorf("Rules[0].Code = %v, want 2345", got.Rules[0].Code)
	}
	if got.Rules[0].Kind != rewrite.KindStatic || got.Rules[0].Replacement != rewrite.ArgumentMismatchExplanation {
		t.Errorf("Rules[0] kind/replacement = %q/%q", got.Rules[0].Kind, got.Rules[0].Replacement)
	}
	if got.Fallback == nil || got.Fallback.Contains != "not assignable" || got.Fallback.Code != nil {
		t.Errorf("Fallback = %+v, want code-less not assignable rule", got.Fallback)
	}
}

func TestToRulesResponse_Nil(t *testing.T) {
	t.Parallel()

	got := dto.ToRulesResponse(nil)

	if got.Gate != "" || len(got.Rules) != 0 || got.Fallback != nil {
		t.Errorf("ToRulesResponse(nil) = %+v, want empty", got)
	}
}

func TestToOperationResponse(t *testing.T) {
	t.Parallel()

	diags := dto.ToOperationResponse(diagnostic.OperationSemanticDiagnostics, []diagnostic.Diagnostic{sampleDiagnostic()})
	if _, ok := diags.Result.([]dto.DiagnosticResponse); !ok {
		t.Errorf("Result type = %T, want []dto.DiagnosticResponse", diags.Result)
	}

	raw := json.RawMessage(`{"kind":"alias"}`)
	other := dto.ToOperationResponse("getQuickInfoAtPosition", raw)
	body, err := json.Marshal(other)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(body) != `{"operation":"getQuickInfoAtPosition","result":{"kind":"alias"}}` {
		t.Errorf("body = %s", body)
	}
}
