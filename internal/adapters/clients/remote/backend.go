package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/brandgate/internal/adapters/clients/remote/wire"
	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/platform/httpclient"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AnalysisBackend = (*Backend)(nil)
	_ ports.HealthChecker   = (*Backend)(nil)
)

const operationsPath = "/api/v1/operations/"

// Backend is the outbound adapter for a remote analysis service. Every
// operation is a POST to /api/v1/operations/{operation} carrying the
// arguments as {"args": [...]}.
//
// The semantic diagnostics operation is decoded through the [wire]
// translators into []diagnostic.Diagnostic so the facade can rewrite it.
// Every other operation returns the response body as json.RawMessage.
type Backend struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger
}

// NewBackend creates a Backend that sends requests through the given
// [httpclient.Client], whose BaseURL points at the service root.
func NewBackend(client *httpclient.Client, logger *slog.Logger) *Backend {
	return &Backend{
		req:    NewRequester(client, logger),
		client: client,
		logger: logger,
	}
}

// Invoke implements ports.AnalysisBackend.
func (b *Backend) Invoke(ctx context.Context, operation string, args ...any) (any, error) {
	if operation == "" {
		return nil, domain.NewValidationError("operation", "is required")
	}

	ctx = httpclient.WithOperation(ctx, operation)
	path := operationsPath + url.PathEscape(operation)
	body := wire.ToOperationRequest(args)

	if operation == diagnostic.OperationSemanticDiagnostics {
		var dto wire.DiagnosticsResponseDTO
		if err := b.req.Do(ctx, http.MethodPost, path, http.StatusOK, body, &dto); err != nil {
			return nil, err
		}
		diags, err := wire.ToDomainDiagnostics(dto)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid diagnostics response: %w", domain.ErrUnavailable, err)
		}
		return diags, nil
	}

	var raw json.RawMessage
	if err := b.req.Do(ctx, http.MethodPost, path, http.StatusOK, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Name returns the identifier registered with the health registry. It is
// the service name the httpclient uses for spans and metrics.
func (b *Backend) Name() string {
	return b.client.Name()
}

// HealthCheck reports the remote service's availability from the circuit
// breaker state. No network call is made.
func (b *Backend) HealthCheck(ctx context.Context) error {
	return b.client.HealthCheck(ctx)
}
