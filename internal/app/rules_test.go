package app

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/config"
)

func TestBuildRuleSet_DefaultsWhenNoRules(t *testing.T) {
	t.Parallel()

	rs, err := BuildRuleSet(config.RewriteConfig{Gate: "__opaque"})
	if err != nil {
		t.Fatalf("BuildRuleSet() error = %v", err)
	}
	if rs.Gate() != "__opaque" {
		t.Errorf("Gate() = %q, want __opaque", rs.Gate())
	}
	if n := len(rs.Rules()); n != 2 {
		t.Errorf("len(Rules()) = %d, want 2 default rules", n)
	}
	if _, ok := rs.Fallback(); !ok {
		t.Error("Fallback() ok = false, want default fallback")
	}
}

func TestBuildRuleSet_EmptyGateUsesBrandMarker(t *testing.T) {
	t.Parallel()

	rs, err := BuildRuleSet(config.RewriteConfig{})
	if err != nil {
		t.Fatalf("BuildRuleSet() error = %v", err)
	}
	if rs.Gate() != rewrite.BrandMarker {
		t.Errorf("Gate() = %q, want %q", rs.Gate(), rewrite.BrandMarker)
	}
}

func TestBuildRuleSet_FromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.RewriteConfig{
		Gate: "__brand",
		Rules: []config.RuleConfig{
			{Name: "argument", Code: 2345, Contains: "Argument", Message: "static text"},
			{Name: "templated", Contains: "Type", Template: "TS{{ .Code }} in {{ .File | base }}"},
		},
		Fallback: &config.RuleConfig{Name: "generic", Contains: "not assignable", Message: "generic"},
	}

	rs, err := BuildRuleSet(cfg)
	if err != nil {
		t.Fatalf("BuildRuleSet() error = %v", err)
	}

	arg := textDiag(2345, brandArgumentMsg)
	if res := rewrite.Classify(arg, rs); res.Rule != "argument" || messageOf(t, arg.WithMessage(res.Message)) != "static text" {
		t.Errorf("Classify(2345) = %+v, want argument/static text", res)
	}

	typ := textDiag(2322, brandTypeMsg)
	res := rewrite.Classify(typ, rs)
	if res.Outcome != rewrite.OutcomeRewritten || res.Rule != "templated" {
		t.Fatalf("Classify(2322) = %v/%q, want rewritten/templated", res.Outcome, res.Rule)
	}
	if got, _ := res.Message.PlainText(); got != "TS2322 in users.ts" {
		t.Errorf("templated message = %q, want %q", got, "TS2322 in users.ts")
	}

	if rules := rs.Rules(); rules[1].Code != nil {
		t.Errorf("Rules()[1].Code = %d, want nil for code 0", *rules[1].Code)
	}
}

func TestBuildRuleSet_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       config.RewriteConfig
		wantField string
	}{
		{
			name: "bad template",
			cfg: config.RewriteConfig{Gate: "__brand", Rules: []config.RuleConfig{
				{Name: "t", Contains: "x", Template: "{{ .Code "},
			}},
			wantField: "rules[0].template",
		},
		{
			name: "message and template",
			cfg: config.RewriteConfig{Gate: "__brand", Rules: []config.RuleConfig{
				{Name: "t", Contains: "x", Message: "m", Template: "t"},
			}},
			wantField: "rules[0]",
		},
		{
			name: "missing replacement",
			cfg: config.RewriteConfig{Gate: "__brand", Rules: []config.RuleConfig{
				{Name: "t", Contains: "x"},
			}},
			wantField: "rules[0].replacement",
		},
		{
			name: "duplicate names",
			cfg: config.RewriteConfig{Gate: "__brand", Rules: []config.RuleConfig{
				{Name: "t", Contains: "x", Message: "a"},
				{Name: "t", Contains: "y", Message: "b"},
			}},
			wantField: "rules[1].name",
		},
		{
			name: "fallback without contains",
			cfg: config.RewriteConfig{Gate: "__brand",
				Fallback: &config.RuleConfig{Name: "f", Message: "m"},
			},
			wantField: "fallback.contains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := BuildRuleSet(tt.cfg)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("BuildRuleSet() error = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}
