package app

import (
	"fmt"

	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/config"
)

// BuildRuleSet converts the rewrite configuration into a RuleSet.
//
// When no rules and no fallback are configured, the default brand rules are
// used under the configured gate. Otherwise the configured rules replace the
// defaults entirely. Invalid configuration yields a *domain.ValidationError.
func BuildRuleSet(cfg config.RewriteConfig) (*rewrite.RuleSet, error) {
	gate := cfg.Gate
	if gate == "" {
		gate = rewrite.BrandMarker
	}

	if len(cfg.Rules) == 0 && cfg.Fallback == nil {
		return rewrite.NewBuilder(gate).
			Append(rewrite.DefaultRules()...).
			Fallback(rewrite.DefaultFallback()).
			Build()
	}

	b := rewrite.NewBuilder(gate)
	for i, rc := range cfg.Rules {
		r, err := ruleFromConfig(fmt.Sprintf("rules[%d]", i), rc)
		if err != nil {
			return nil, err
		}
		b.Append(r)
	}
	if cfg.Fallback != nil {
		r, err := ruleFromConfig("fallback", *cfg.Fallback)
		if err != nil {
			return nil, err
		}
		b.Fallback(r)
	}
	return b.Build()
}

func ruleFromConfig(path string, rc config.RuleConfig) (rewrite.Rule, error) {
	r := rewrite.Rule{
		Name:     rc.Name,
		Contains: rc.Contains,
	}
	if rc.Code != 0 {
		r.Code = rewrite.Code(rc.Code)
	}

	switch {
	case rc.Message != "" && rc.Template != "":
		return rewrite.Rule{}, domain.NewValidationError(path, "must set exactly one of message or template")
	case rc.Template != "":
		tmpl, err := rewrite.NewTemplate(rc.Name, rc.Template)
		if err != nil {
			return rewrite.Rule{}, domain.NewValidationError(path+".template", err.Error())
		}
		r.Replacement = tmpl
	case rc.Message != "":
		r.Replacement = rewrite.Static(rc.Message)
	}
	// A rule with neither is left without a replacement and rejected by Build.

	return r, nil
}
