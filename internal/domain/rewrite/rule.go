// Package rewrite implements the diagnostic rewrite rules and the engine that
// applies them.
//
// A RuleSet is an ordered, immutable list of rules guarded by a single gate
// substring. The engine classifies each diagnostic top to bottom with no
// backtracking:
//
//	chained message        -> unchanged
//	gate substring absent  -> unchanged
//	first matching rule    -> message replaced
//	fallback rule matches  -> message replaced
//	otherwise              -> unchanged
//
// Construction:
//
//	rs, err := rewrite.NewBuilder("__brand").
//	    Append(rewrite.Rule{Name: "arg", Code: rewrite.Code(2345), Contains: "Argument", Replacement: rewrite.Static("...")}).
//	    Fallback(rewrite.Rule{Name: "generic", Contains: "not assignable", Replacement: rewrite.Static("...")}).
//	    Build()
//
//	out := rewrite.NewEngine(rs).Rewrite(ctx, diagnostics)
package rewrite

import "strings"

// Rule replaces the message of diagnostics it matches.
type Rule struct {
	// Name identifies the rule in logs, metrics, and explain output.
	Name string

	// Code restricts the rule to one diagnostic code. Nil matches any code.
	Code *int

	// Contains must appear in the message text for the rule to match.
	Contains string

	// Replacement produces the new message text.
	Replacement Replacement
}

// Code returns a code filter for Rule.Code.
func Code(code int) *int {
	return &code
}

// matches reports whether the rule is eligible for a diagnostic with the given
// code and message text.
func (r *Rule) matches(code int, text string) bool {
	if r.Code != nil && *r.Code != code {
		return false
	}
	return strings.Contains(text, r.Contains)
}
