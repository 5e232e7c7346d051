package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/logging"
	"github.com/jsamuelsen11/brandgate/internal/platform/telemetry"
)

// RewriteObserver returns an engine observer that counts every outcome and
// logs failed replacements. It logs through the request-scoped logger in ctx
// when there is one, falling back to logger. Either argument may be nil.
func RewriteObserver(metrics *telemetry.Metrics, logger *slog.Logger) rewrite.Observer {
	return func(ctx context.Context, d diagnostic.Diagnostic, res rewrite.Result) {
		if metrics != nil {
			metrics.RecordRewrite(ctx, res.Outcome.String(), res.Rule)
		}
		log := logging.FromContextOr(ctx, logger)
		if log == nil {
			return
		}

		switch res.Outcome {
		case rewrite.OutcomeFailed:
			log.WarnContext(ctx, "rewrite replacement failed, kept original message",
				slog.String("rule", res.Rule),
				slog.Int("code", d.Code),
				slog.String("file", d.File),
				slog.Any("error", res.Err),
			)
		case rewrite.OutcomeRewritten:
			log.DebugContext(ctx, "diagnostic rewritten",
				slog.String("rule", res.Rule),
				slog.Int("code", d.Code),
				slog.String("file", d.File),
			)
		}
	}
}
