// Package config provides configuration loading and validation for the gateway.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Backend kinds accepted in backend.kind.
const (
	BackendLSP  = "lsp"
	BackendHTTP = "http"
)

// Config holds all configuration for the gateway.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Backend   BackendConfig   `koanf:"backend"`
	Rewrite   RewriteConfig   `koanf:"rewrite"`
	Gateway   GatewayConfig   `koanf:"gateway"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client used by the remote
// analysis backend.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A RequestsPerSecond of zero disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// BackendConfig selects and configures the analysis backend the gateway wraps.
type BackendConfig struct {
	// Kind is BackendLSP (spawn a language server) or BackendHTTP (call the
	// remote analysis service at client.base_url).
	Kind string    `koanf:"kind"`
	LSP  LSPConfig `koanf:"lsp"`
}

// LSPConfig holds settings for the stdio language server backend.
type LSPConfig struct {
	Command         string        `koanf:"command"`
	Args            []string      `koanf:"args"`
	Root            string        `koanf:"root"`
	StartTimeout    time.Duration `koanf:"start_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// PublishVersions advertises publishDiagnostics version support and
	// ignores pushed diagnostics that carry no version. Disable it for
	// servers that never send one.
	PublishVersions bool `koanf:"publish_versions"`
}

// RewriteConfig describes the rewrite rule set. When Rules is empty and
// Fallback is nil the built-in brand rule set is used.
type RewriteConfig struct {
	Gate     string       `koanf:"gate"`
	Rules    []RuleConfig `koanf:"rules"`
	Fallback *RuleConfig  `koanf:"fallback"`
}

// RuleConfig is one configured rewrite rule. Exactly one of Message and
// Template must be set. A Code of zero matches any diagnostic code.
type RuleConfig struct {
	Name     string `koanf:"name"`
	Code     int    `koanf:"code"`
	Contains string `koanf:"contains"`
	Message  string `koanf:"message"`
	Template string `koanf:"template"`
}

// GatewayConfig holds application service settings.
type GatewayConfig struct {
	BatchWorkers  int `koanf:"batch_workers"`
	MaxBatchFiles int `koanf:"max_batch_files"`
}
