// Package middleware provides the HTTP middleware chain: request
// logging, Prometheus metrics, and panic recovery.
package middleware
