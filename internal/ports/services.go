package ports

import (
	"context"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
)

// GatewayService defines the service port for the diagnostic gateway.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI). Every backend call goes through the intercepting facade,
// so diagnostics returned here are already rewritten.
type GatewayService interface {
	// Invoke forwards a named operation to the backend through the facade.
	// Backend errors are returned unchanged.
	Invoke(ctx context.Context, operation string, args []any) (any, error)

	// Diagnostics returns the rewritten semantic diagnostics for one file.
	// Returns domain.ErrValidation if file is empty and domain.ErrUnavailable
	// if the backend answered with something other than diagnostics.
	Diagnostics(ctx context.Context, file string) ([]diagnostic.Diagnostic, error)

	// DiagnosticsBatch fetches diagnostics for several files concurrently.
	// Uses partial success semantics: each file succeeds or fails
	// independently. Returns a hard error only for request-level failures
	// (validation). Per-file failures are collected in BatchResult.Errors.
	DiagnosticsBatch(ctx context.Context, files []string) (*BatchResult, error)

	// Rewrite applies the active rule set to diagnostics supplied by the
	// caller. It never fails; see rewrite.Rewrite.
	Rewrite(ctx context.Context, diagnostics []diagnostic.Diagnostic) []diagnostic.Diagnostic

	// Explain classifies each diagnostic against the active rule set
	// without building the rewritten slice.
	Explain(ctx context.Context, diagnostics []diagnostic.Diagnostic) []rewrite.Result

	// Rules returns the active rule set.
	Rules(ctx context.Context) *rewrite.RuleSet
}

// FileDiagnostics pairs a file with its rewritten diagnostics.
type FileDiagnostics struct {
	File        string
	Diagnostics []diagnostic.Diagnostic
}

// BatchError records a single failed file within a batch.
type BatchError struct {
	File string
	Err  error
}

// BatchResult holds the outcomes of a batch diagnostics request.
// Files holds the successes in request order; Errors holds per-file failures.
type BatchResult struct {
	Files  []FileDiagnostics
	Errors []BatchError
}
