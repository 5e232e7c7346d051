package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(c.Backend.Kind),
		c.Telemetry.validate(),
		c.Backend.validate(),
		c.Rewrite.validate(),
		c.Gateway.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(backendKind string) error {
	var errs []error

	if backendKind == BackendHTTP && cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty when backend.kind is http"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (b *BackendConfig) validate() error {
	switch b.Kind {
	case BackendHTTP:
		return nil
	case BackendLSP:
		// Checked below.
	default:
		return fmt.Errorf("backend.kind must be one of: lsp, http; got %q", b.Kind)
	}

	var errs []error

	if b.LSP.Command == "" {
		errs = append(errs, errors.New("backend.lsp.command must not be empty when backend.kind is lsp"))
	}
	if b.LSP.StartTimeout <= 0 {
		errs = append(errs, errors.New("backend.lsp.start_timeout must be positive"))
	}
	if b.LSP.RequestTimeout <= 0 {
		errs = append(errs, errors.New("backend.lsp.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

// validate checks the shape of the rewrite section. Rule semantics (duplicate
// names, template syntax) are checked when the rule set is built.
func (r *RewriteConfig) validate() error {
	var errs []error

	if r.Gate == "" {
		errs = append(errs, errors.New("rewrite.gate must not be empty"))
	}
	for i := range r.Rules {
		errs = append(errs, r.Rules[i].validate(fmt.Sprintf("rewrite.rules[%d]", i)))
	}
	if r.Fallback != nil {
		errs = append(errs, r.Fallback.validate("rewrite.fallback"))
	}

	return errors.Join(errs...)
}

func (rc *RuleConfig) validate(path string) error {
	var errs []error

	if rc.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name must not be empty", path))
	}
	if rc.Contains == "" {
		errs = append(errs, fmt.Errorf("%s.contains must not be empty", path))
	}
	if rc.Code < 0 {
		errs = append(errs, fmt.Errorf("%s.code must not be negative, got %d", path, rc.Code))
	}
	if (rc.Message == "") == (rc.Template == "") {
		errs = append(errs, fmt.Errorf("%s must set exactly one of message or template", path))
	}

	return errors.Join(errs...)
}

func (g *GatewayConfig) validate() error {
	var errs []error

	if g.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("gateway.batch_workers must be >= 1, got %d", g.BatchWorkers))
	}
	if g.MaxBatchFiles < 1 {
		errs = append(errs, fmt.Errorf("gateway.max_batch_files must be >= 1, got %d", g.MaxBatchFiles))
	}

	return errors.Join(errs...)
}
