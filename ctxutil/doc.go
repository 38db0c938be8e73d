// Package ctxutil carries request-scoped values on context.Context.
package ctxutil
