package ports

import "context"

// AnalysisBackend is the capability set of a static-analysis backend: a
// language server, a remote analysis service, or a facade wrapping either.
// Operations are addressed by name and the set is open-ended; callers and
// wrappers must not assume a fixed list.
//
// Implemented by the outbound adapters (clients/lsp, clients/remote) and by
// app.Facade; called by the application layer.
type AnalysisBackend interface {
	// Invoke runs the named operation with the given arguments and returns
	// its result. The result type depends on the operation and the backend;
	// the designated diagnostics operation yields []diagnostic.Diagnostic.
	// Errors are the backend's own and should be inspected with errors.Is
	// against the domain sentinels.
	Invoke(ctx context.Context, operation string, args ...any) (any, error)
}
