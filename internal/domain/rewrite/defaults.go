package rewrite

import "github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"

// BrandMarker is the property name the opaque-type convention uses to tag
// branded types. Its presence in a message is the default gate.
const BrandMarker = "__brand"

// Names of the default rules.
const (
	RuleArgumentNotAssignable = "argument-not-assignable"
	RuleTypeNotAssignable     = "type-not-assignable"
	RuleNotAssignable         = "not-assignable"
)

// Explanations produced by the default rules.
const (
	ArgumentMismatchExplanation = "This argument is missing a brand required by the parameter. " +
		"A branded type only accepts values created by its constructor or validator; " +
		"a plain value with the same shape is rejected on purpose. " +
		"Pass the value through the brand's constructor before calling this function."

	TypeMismatchExplanation = "This value is missing a brand required by its target type. " +
		"Branded types are not interchangeable with their underlying type or with other brands. " +
		"Create the value with the brand's constructor, or unwrap it explicitly if the brand should be dropped."

	GenericMismatchExplanation = "A branded type is involved in this assignment. " +
		"Values of a brand can only be produced by that brand's constructor, " +
		"so a structurally identical value is still not assignable."
)

// Default returns the rule set for the opaque-type convention: two
// code-specific rules followed by a generic "not assignable" fallback, gated
// on BrandMarker.
func Default() *RuleSet {
	rs, err := NewBuilder(BrandMarker).
		Append(DefaultRules()...).
		Fallback(DefaultFallback()).
		Build()
	if err != nil {
		panic("rewrite: default rule set is invalid: " + err.Error())
	}
	return rs
}

// DefaultRules returns the code-specific rules of the default rule set, in
// precedence order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        RuleArgumentNotAssignable,
			Code:        Code(diagnostic.CodeArgumentNotAssignable),
			Contains:    "Argument",
			Replacement: Static(ArgumentMismatchExplanation),
		},
		{
			Name:        RuleTypeNotAssignable,
			Code:        Code(diagnostic.CodeTypeNotAssignable),
			Contains:    "Type",
			Replacement: Static(TypeMismatchExplanation),
		},
	}
}

// DefaultFallback returns the fallback rule of the default rule set.
func DefaultFallback() Rule {
	return Rule{
		Name:        RuleNotAssignable,
		Contains:    "not assignable",
		Replacement: Static(GenericMismatchExplanation),
	}
}
