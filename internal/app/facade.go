package app

import (
	"context"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// Compile-time check that Facade implements ports.AnalysisBackend.
var _ ports.AnalysisBackend = (*Facade)(nil)

type overrideFunc func(ctx context.Context, args []any) (any, error)

// Facade is an AnalysisBackend that forwards every operation to the wrapped
// backend unchanged, except the semantic diagnostics query, whose result is
// passed through the rewrite engine.
//
// The override table is fixed at construction. The facade holds no other
// state, so concurrent calls need no locking.
type Facade struct {
	backend   ports.AnalysisBackend
	engine    *rewrite.Engine
	overrides map[string]overrideFunc
}

// NewFacade wraps backend. It panics if backend or engine is nil, since
// either is a wiring error.
func NewFacade(backend ports.AnalysisBackend, engine *rewrite.Engine) *Facade {
	if backend == nil {
		panic("app: NewFacade called with nil backend")
	}
	if engine == nil {
		panic("app: NewFacade called with nil engine")
	}

	f := &Facade{backend: backend, engine: engine}
	f.overrides = map[string]overrideFunc{
		diagnostic.OperationSemanticDiagnostics: f.semanticDiagnostics,
	}
	return f
}

// Invoke dispatches operation. Operations without an override return the
// backend's result and error as-is.
func (f *Facade) Invoke(ctx context.Context, operation string, args ...any) (any, error) {
	if override, ok := f.overrides[operation]; ok {
		return override(ctx, args)
	}
	return f.backend.Invoke(ctx, operation, args...)
}

// Overridden reports whether operation is intercepted.
func (f *Facade) Overridden(operation string) bool {
	_, ok := f.overrides[operation]
	return ok
}

// semanticDiagnostics calls the backend with the caller's arguments and
// rewrites the result. Backend errors are returned unwrapped. A result that
// is not a diagnostic slice is returned unchanged.
func (f *Facade) semanticDiagnostics(ctx context.Context, args []any) (any, error) {
	result, err := f.backend.Invoke(ctx, diagnostic.OperationSemanticDiagnostics, args...)
	if err != nil {
		return result, err
	}

	diagnostics, ok := result.([]diagnostic.Diagnostic)
	if !ok {
		return result, nil
	}
	return f.engine.Rewrite(ctx, diagnostics), nil
}
