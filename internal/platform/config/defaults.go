package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBatchWorkers  = 4
	defaultMaxBatchFiles = 64
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "brandgate",

		"backend.kind":                 BackendLSP,
		"backend.lsp.command":          "typescript-language-server",
		"backend.lsp.args":             []string{"--stdio"},
		"backend.lsp.root":             ".",
		"backend.lsp.start_timeout":    "10s",
		"backend.lsp.request_timeout":  "30s",
		"backend.lsp.shutdown_timeout": "5s",
		"backend.lsp.publish_versions": true,

		"rewrite.gate": "__brand",

		"gateway.batch_workers":   defaultBatchWorkers,
		"gateway.max_batch_files": defaultMaxBatchFiles,
	}
}
