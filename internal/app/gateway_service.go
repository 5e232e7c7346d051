package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/brandgate/internal/app/fanout"
	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/telemetry"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// Compile-time check that GatewayService implements ports.GatewayService.
var _ ports.GatewayService = (*GatewayService)(nil)

const (
	defaultBatchWorkers  = 4
	defaultMaxBatchFiles = 64

	tracerName = "github.com/jsamuelsen11/brandgate/internal/app"
)

// GatewayService implements ports.GatewayService on top of the intercepting
// facade. It handles validation, structured logging, tracing, and batching;
// the rewriting itself happens in the facade and the engine.
type GatewayService struct {
	facade        ports.AnalysisBackend
	engine        *rewrite.Engine
	logger        *slog.Logger
	tracer        trace.Tracer
	batchWorkers  int
	maxBatchFiles int
}

// GatewayOption configures a GatewayService.
type GatewayOption func(*GatewayService)

// WithBatchWorkers bounds the number of concurrent backend calls made by
// DiagnosticsBatch. Values below 1 are ignored.
func WithBatchWorkers(n int) GatewayOption {
	return func(s *GatewayService) {
		if n >= 1 {
			s.batchWorkers = n
		}
	}
}

// WithMaxBatchFiles caps the number of files accepted by DiagnosticsBatch.
// Values below 1 are ignored.
func WithMaxBatchFiles(n int) GatewayOption {
	return func(s *GatewayService) {
		if n >= 1 {
			s.maxBatchFiles = n
		}
	}
}

// NewGatewayService creates a GatewayService. facade is normally a *Facade
// wrapping the configured backend; engine must be the same engine the facade
// uses so that Rewrite, Explain, and Rules agree with backend results. A nil
// logger is replaced with one that discards output.
func NewGatewayService(facade ports.AnalysisBackend, engine *rewrite.Engine, logger *slog.Logger, opts ...GatewayOption) *GatewayService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &GatewayService{
		facade:        facade,
		engine:        engine,
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
		batchWorkers:  defaultBatchWorkers,
		maxBatchFiles: defaultMaxBatchFiles,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invoke forwards operation through the facade. Errors are logged and
// returned unchanged.
func (s *GatewayService) Invoke(ctx context.Context, operation string, args []any) (any, error) {
	if strings.TrimSpace(operation) == "" {
		return nil, domain.NewValidationError("operation", "must not be empty")
	}

	ctx, span := s.tracer.Start(ctx, "GatewayService.Invoke",
		trace.WithAttributes(telemetry.AttrGatewayOperation.String(operation)),
	)
	defer span.End()

	s.logger.DebugContext(ctx, "invoking backend operation",
		slog.String("operation", operation),
		slog.Int("args", len(args)),
	)

	result, err := s.facade.Invoke(ctx, operation, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "backend operation failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil, err
	}

	return result, nil
}

// Diagnostics returns the rewritten semantic diagnostics for file.
func (s *GatewayService) Diagnostics(ctx context.Context, file string) ([]diagnostic.Diagnostic, error) {
	if strings.TrimSpace(file) == "" {
		return nil, domain.NewValidationError("file", "must not be empty")
	}

	ctx, span := s.tracer.Start(ctx, "GatewayService.Diagnostics",
		trace.WithAttributes(attribute.String("brandgate.file", file)),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "fetching diagnostics", slog.String("file", file))

	result, err := s.facade.Invoke(ctx, diagnostic.OperationSemanticDiagnostics, file)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "failed to fetch diagnostics",
			slog.String("operation", "Diagnostics"),
			slog.String("file", file),
			slog.Any("error", err),
		)
		return nil, err
	}

	diagnostics, ok := result.([]diagnostic.Diagnostic)
	if !ok {
		err = fmt.Errorf("%w: %s returned %T", domain.ErrUnavailable, diagnostic.OperationSemanticDiagnostics, result)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "backend returned unexpected diagnostics result",
			slog.String("operation", "Diagnostics"),
			slog.String("file", file),
			slog.Any("error", err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("brandgate.diagnostics", len(diagnostics)))
	return diagnostics, nil
}

// DiagnosticsBatch fetches diagnostics for files concurrently with partial
// success semantics. Validation failures abort the whole request; backend
// failures are reported per file. A file listed more than once is fetched
// once and reported at every position.
func (s *GatewayService) DiagnosticsBatch(ctx context.Context, files []string) (*ports.BatchResult, error) {
	if err := s.validateBatch(files); err != nil {
		return nil, err
	}

	distinct, slot := dedupe(files)

	s.logger.InfoContext(ctx, "fetching diagnostics batch",
		slog.Int("files", len(files)),
		slog.Int("distinct", len(distinct)),
		slog.Int("workers", s.batchWorkers),
	)

	results := fanout.Run(ctx, s.batchWorkers, distinct, s.Diagnostics)

	out := &ports.BatchResult{
		Files:  make([]ports.FileDiagnostics, 0, len(files)),
		Errors: []ports.BatchError{},
	}
	for i := range files {
		r := results[slot[i]]
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BatchError{File: files[i], Err: r.Err})
			continue
		}
		out.Files = append(out.Files, ports.FileDiagnostics{File: files[i], Diagnostics: r.Value})
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "diagnostics batch completed with errors",
			slog.Int("succeeded", len(out.Files)),
			slog.Int("failed", len(out.Errors)),
		)
	}

	return out, nil
}

// dedupe returns the distinct files in first-seen order and, for each input
// position, the index of its file in that list.
func dedupe(files []string) ([]string, []int) {
	distinct := make([]string, 0, len(files))
	slot := make([]int, len(files))
	seen := make(map[string]int, len(files))
	for i, f := range files {
		j, ok := seen[f]
		if !ok {
			j = len(distinct)
			seen[f] = j
			distinct = append(distinct, f)
		}
		slot[i] = j
	}
	return distinct, slot
}

func (s *GatewayService) validateBatch(files []string) error {
	if len(files) == 0 {
		return domain.NewValidationError("files", "must not be empty")
	}
	if len(files) > s.maxBatchFiles {
		return domain.NewValidationError("files",
			fmt.Sprintf("must contain at most %d entries, got %d", s.maxBatchFiles, len(files)))
	}

	fields := make(map[string]string)
	for i, f := range files {
		if strings.TrimSpace(f) == "" {
			fields[fmt.Sprintf("files[%d]", i)] = "must not be empty"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Rewrite applies the active rule set to caller-supplied diagnostics.
func (s *GatewayService) Rewrite(ctx context.Context, diagnostics []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	s.logger.DebugContext(ctx, "rewriting diagnostics", slog.Int("count", len(diagnostics)))
	return s.engine.Rewrite(ctx, diagnostics)
}

// Explain classifies caller-supplied diagnostics against the active rule set.
func (s *GatewayService) Explain(ctx context.Context, diagnostics []diagnostic.Diagnostic) []rewrite.Result {
	s.logger.DebugContext(ctx, "explaining diagnostics", slog.Int("count", len(diagnostics)))
	return s.engine.Explain(ctx, diagnostics)
}

// Rules returns the active rule set.
func (s *GatewayService) Rules(context.Context) *rewrite.RuleSet {
	return s.engine.RuleSet()
}
