// Package main is the entry point for the gateway service. It wires all
// dependencies using samber/do v2, starts the analysis backend and the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/brandgate/internal/adapters/http"
	"github.com/jsamuelsen11/brandgate/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/brandgate/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/brandgate/internal/adapters/clients/lsp"
	"github.com/jsamuelsen11/brandgate/internal/adapters/clients/remote"
	"github.com/jsamuelsen11/brandgate/internal/app"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/config"
	"github.com/jsamuelsen11/brandgate/internal/platform/health"
	"github.com/jsamuelsen11/brandgate/internal/platform/httpclient"
	"github.com/jsamuelsen11/brandgate/internal/platform/logging"
	"github.com/jsamuelsen11/brandgate/internal/platform/telemetry"
	"github.com/jsamuelsen11/brandgate/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout  = 15 * time.Second
	backendShutdownTimeout = 10 * time.Second
	otelShutdownTimeout    = 5 * time.Second
	healthCheckTimeout     = 3 * time.Second

	remoteServiceName = "analysis-api"
)

// lifecycle is implemented by backends that own a process.
type lifecycle interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Start the backend before accepting traffic. A language server that
	// cannot initialize is a startup failure.
	backend, err := do.Invoke[ports.HealthChecker](injector)
	if err != nil {
		return fmt.Errorf("resolving backend: %w", err)
	}
	if lc, ok := backend.(lifecycle); ok {
		if err := lc.Start(ctx); err != nil {
			return fmt.Errorf("starting %s backend: %w", cfg.Backend.Kind, err)
		}
		logger.Info("analysis backend started",
			slog.String("kind", cfg.Backend.Kind),
			slog.String("name", backend.Name()),
		)
	}

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		stopBackend(backend, logger)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(backend)

	rules := do.MustInvoke[*rewrite.RuleSet](injector)
	logger.Info("rewrite rules loaded",
		slog.String("gate", rules.Gate()),
		slog.Int("rules", len(rules.Rules())),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		stopBackend(backend, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	stopBackend(backend, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// stopBackend shuts down a process-owning backend. Other backends are left
// alone.
func stopBackend(backend ports.HealthChecker, logger *slog.Logger) {
	lc, ok := backend.(lifecycle)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), backendShutdownTimeout)
	defer cancel()

	if err := lc.Shutdown(ctx); err != nil {
		logger.Error("backend shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, remoteServiceName, metrics, logger), nil
	})

	// The concrete backend is exposed as a HealthChecker so it can be
	// registered for readiness and started or stopped by run.
	do.Provide(injector, func(i do.Injector) (ports.HealthChecker, error) {
		switch cfg.Backend.Kind {
		case config.BackendLSP:
			return lsp.New(cfg.Backend.LSP, logger), nil
		case config.BackendHTTP:
			client := do.MustInvoke[*httpclient.Client](i)
			return remote.NewBackend(client, logger), nil
		default:
			return nil, fmt.Errorf("unknown backend kind %q", cfg.Backend.Kind)
		}
	})

	do.Provide(injector, func(i do.Injector) (ports.AnalysisBackend, error) {
		checker := do.MustInvoke[ports.HealthChecker](i)
		backend, ok := checker.(ports.AnalysisBackend)
		if !ok {
			return nil, fmt.Errorf("backend %s does not implement AnalysisBackend", checker.Name())
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewMeasuredBackend(backend, checker.Name(), metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (*rewrite.RuleSet, error) {
		return app.BuildRuleSet(cfg.Rewrite)
	})

	do.Provide(injector, func(i do.Injector) (*rewrite.Engine, error) {
		rules := do.MustInvoke[*rewrite.RuleSet](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return rewrite.NewEngine(rules, rewrite.WithObserver(app.RewriteObserver(metrics, logger))), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Facade, error) {
		backend := do.MustInvoke[ports.AnalysisBackend](i)
		engine := do.MustInvoke[*rewrite.Engine](i)
		return app.NewFacade(backend, engine), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GatewayService, error) {
		facade := do.MustInvoke[*app.Facade](i)
		engine := do.MustInvoke[*rewrite.Engine](i)
		return app.NewGatewayService(facade, engine, logger,
			app.WithBatchWorkers(cfg.Gateway.BatchWorkers),
			app.WithMaxBatchFiles(cfg.Gateway.MaxBatchFiles),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.GatewayHandler, error) {
		svc := do.MustInvoke[ports.GatewayService](i)
		return handlers.NewGatewayHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		gatewayH := do.MustInvoke[*handlers.GatewayHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(gatewayH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
