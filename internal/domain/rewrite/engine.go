package rewrite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

// Outcome is the terminal classification of one diagnostic. Outcomes are
// mutually exclusive and decided top to bottom.
type Outcome int

const (
	// OutcomeChain: the message is a chain and was left unchanged.
	OutcomeChain Outcome = iota
	// OutcomeGateFailed: the message lacks the gate substring.
	OutcomeGateFailed
	// OutcomeNoMatch: the gate passed but neither a rule nor the fallback matched.
	OutcomeNoMatch
	// OutcomeRewritten: a rule (or the fallback) replaced the message.
	OutcomeRewritten
	// OutcomeFailed: the winning rule's replacement failed; the original
	// message was kept.
	OutcomeFailed
)

// String implements fmt.Stringer. The values double as metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeChain:
		return "chain"
	case OutcomeGateFailed:
		return "gate_failed"
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeRewritten:
		return "rewritten"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records how a single diagnostic was classified.
type Result struct {
	Outcome Outcome
	// Rule is the name of the winning rule for OutcomeRewritten and
	// OutcomeFailed, empty otherwise.
	Rule string
	// Message is the message the diagnostic carries after classification.
	Message diagnostic.Message
	// Err is the replacement failure for OutcomeFailed, nil otherwise.
	Err error
}

// Classify decides the outcome for one diagnostic. It never panics: a
// replacement that returns an error or panics yields OutcomeFailed with the
// original message. A nil RuleSet classifies everything as OutcomeGateFailed.
func Classify(d diagnostic.Diagnostic, rs *RuleSet) Result {
	text, ok := d.Message.PlainText()
	if !ok {
		return Result{Outcome: OutcomeChain, Message: d.Message}
	}
	if rs == nil || !strings.Contains(text, rs.gate) {
		return Result{Outcome: OutcomeGateFailed, Message: d.Message}
	}

	for i := range rs.rules {
		if rs.rules[i].matches(d.Code, text) {
			return apply(&rs.rules[i], d)
		}
	}
	if rs.fallback != nil && rs.fallback.matches(d.Code, text) {
		return apply(rs.fallback, d)
	}
	return Result{Outcome: OutcomeNoMatch, Message: d.Message}
}

// Rewrite returns a new slice with every diagnostic classified against rs.
// Length and order match the input; only messages may differ. The input slice
// is not modified.
func Rewrite(diagnostics []diagnostic.Diagnostic, rs *RuleSet) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = d.WithMessage(Classify(d, rs).Message)
	}
	return out
}

func apply(r *Rule, d diagnostic.Diagnostic) (res Result) {
	defer func() {
		if v := recover(); v != nil {
			res = failed(r, d, fmt.Errorf("%w: rule %q panicked: %v", ErrReplacementFailed, r.Name, v))
		}
	}()

	text, err := r.Replacement.Replace(d)
	if err != nil {
		return failed(r, d, fmt.Errorf("%w: rule %q: %w", ErrReplacementFailed, r.Name, err))
	}
	return Result{Outcome: OutcomeRewritten, Rule: r.Name, Message: diagnostic.Text(text)}
}

func failed(r *Rule, d diagnostic.Diagnostic, err error) Result {
	return Result{Outcome: OutcomeFailed, Rule: r.Name, Message: d.Message, Err: err}
}

// Observer receives the classification of every diagnostic an Engine
// processes, with the context of the call that produced it. Observers run
// synchronously on the caller's goroutine.
type Observer func(ctx context.Context, d diagnostic.Diagnostic, res Result)

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers an observer. Multiple observers run in
// registration order.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// Engine binds a RuleSet to optional observers. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	rules     *RuleSet
	observers []Observer
}

// NewEngine creates an Engine over rs.
func NewEngine(rs *RuleSet, opts ...Option) *Engine {
	e := &Engine{rules: rs}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RuleSet returns the rule set the engine applies.
func (e *Engine) RuleSet() *RuleSet {
	return e.rules
}

// Rewrite applies the engine's RuleSet; see the package-level Rewrite.
// ctx is handed to observers only.
func (e *Engine) Rewrite(ctx context.Context, diagnostics []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = d.WithMessage(e.classify(ctx, d).Message)
	}
	return out
}

// Explain returns the classification of each diagnostic without building
// the rewritten slice.
func (e *Engine) Explain(ctx context.Context, diagnostics []diagnostic.Diagnostic) []Result {
	out := make([]Result, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = e.classify(ctx, d)
	}
	return out
}

func (e *Engine) classify(ctx context.Context, d diagnostic.Diagnostic) Result {
	res := Classify(d, e.rules)
	for _, o := range e.observers {
		notify(ctx, o, d, res)
	}
	return res
}

// notify isolates observer panics from the rewrite path.
func notify(ctx context.Context, o Observer, d diagnostic.Diagnostic, res Result) {
	defer func() { _ = recover() }()
	o(ctx, d, res)
}
