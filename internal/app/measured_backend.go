package app

import (
	"context"
	"time"

	"github.com/jsamuelsen11/brandgate/internal/platform/telemetry"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// Compile-time check that MeasuredBackend implements ports.AnalysisBackend.
var _ ports.AnalysisBackend = (*MeasuredBackend)(nil)

// MeasuredBackend records the duration of every call to the wrapped backend.
// Results and errors are returned untouched.
type MeasuredBackend struct {
	backend ports.AnalysisBackend
	name    string
	metrics *telemetry.Metrics
}

// NewMeasuredBackend wraps backend. name labels the metric (e.g. "lsp").
func NewMeasuredBackend(backend ports.AnalysisBackend, name string, metrics *telemetry.Metrics) *MeasuredBackend {
	return &MeasuredBackend{backend: backend, name: name, metrics: metrics}
}

// Invoke forwards to the wrapped backend. With nil metrics it is a plain
// passthrough.
func (m *MeasuredBackend) Invoke(ctx context.Context, operation string, args ...any) (any, error) {
	if m.metrics == nil {
		return m.backend.Invoke(ctx, operation, args...)
	}

	start := time.Now()
	result, err := m.backend.Invoke(ctx, operation, args...)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.metrics.RecordBackendInvoke(ctx, m.name, operation, outcome, time.Since(start))

	return result, err
}
