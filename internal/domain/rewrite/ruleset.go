package rewrite

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/brandgate/internal/domain"
)

// RuleSet is an ordered, immutable collection of rules plus the gate
// substring that must appear in a message before any rule is evaluated.
// A RuleSet is safe for concurrent use once built.
type RuleSet struct {
	gate     string
	rules    []Rule
	fallback *Rule
}

// Gate returns the gate substring.
func (rs *RuleSet) Gate() string {
	return rs.gate
}

// Rules returns a copy of the ordered rules, excluding the fallback.
func (rs *RuleSet) Rules() []Rule {
	out := slices.Clone(rs.rules)
	for i := range out {
		out[i] = detach(out[i])
	}
	return out
}

// Fallback returns the fallback rule and true, or false if none is set.
func (rs *RuleSet) Fallback() (Rule, bool) {
	if rs.fallback == nil {
		return Rule{}, false
	}
	return detach(*rs.fallback), true
}

// Builder assembles a RuleSet. Rules are evaluated in the order they are
// appended; there is no way to reorder them afterwards.
type Builder struct {
	gate     string
	rules    []Rule
	fallback *Rule
}

// NewBuilder starts a RuleSet guarded by the given gate substring.
func NewBuilder(gate string) *Builder {
	return &Builder{gate: gate}
}

// Append adds rules after any previously appended ones.
func (b *Builder) Append(rules ...Rule) *Builder {
	b.rules = append(b.rules, rules...)
	return b
}

// Fallback sets the rule applied when the gate passes but no ordered rule
// matched. A later call replaces an earlier one.
func (b *Builder) Fallback(r Rule) *Builder {
	b.fallback = &r
	return b
}

// Build validates the configuration and returns the immutable RuleSet.
// Returns a *domain.ValidationError describing every problem found.
func (b *Builder) Build() (*RuleSet, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(b.gate) == "" {
		fields["gate"] = "must not be empty"
	}

	seen := make(map[string]int, len(b.rules)+1)
	for i := range b.rules {
		validateRule(fields, fmt.Sprintf("rules[%d]", i), &b.rules[i], seen, i)
	}
	if b.fallback != nil {
		validateRule(fields, "fallback", b.fallback, seen, len(b.rules))
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	rs := &RuleSet{
		gate:  b.gate,
		rules: make([]Rule, len(b.rules)),
	}
	for i := range b.rules {
		rs.rules[i] = detach(b.rules[i])
	}
	if b.fallback != nil {
		fb := detach(*b.fallback)
		rs.fallback = &fb
	}
	return rs, nil
}

// detach copies the code filter so later writes through the caller's pointer
// cannot change a built RuleSet.
func detach(r Rule) Rule {
	if r.Code != nil {
		r.Code = Code(*r.Code)
	}
	return r
}

func validateRule(fields map[string]string, key string, r *Rule, seen map[string]int, idx int) {
	switch {
	case strings.TrimSpace(r.Name) == "":
		fields[key+".name"] = "must not be empty"
	default:
		if prev, dup := seen[r.Name]; dup {
			fields[key+".name"] = fmt.Sprintf("duplicate rule name %q (first used by rule %d)", r.Name, prev)
		} else {
			seen[r.Name] = idx
		}
	}
	if r.Contains == "" {
		fields[key+".contains"] = "must not be empty"
	}
	if r.Replacement == nil {
		fields[key+".replacement"] = "is required"
	}
	if r.Code != nil && *r.Code <= 0 {
		fields[key+".code"] = fmt.Sprintf("must be positive, got %d", *r.Code)
	}
}
