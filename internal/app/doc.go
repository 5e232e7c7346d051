// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// The Facade wraps an analysis backend and rewrites the diagnostics it
// returns; GatewayService layers logging, tracing, validation, and batching on
// top of it for the inbound adapters.
package app
