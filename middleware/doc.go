// Package middleware provides the gin middleware chain of the API: trace id
// propagation, a tracing span per request, access logging and panic recovery.
package middleware
