// Package domain contains types shared across the domain sub-packages.
// The diagnostic model lives in domain/diagnostic and the rewriting rules in
// domain/rewrite. This root package holds the sentinel errors and the
// field-level ValidationError that every layer maps onto its own surface.
package domain
