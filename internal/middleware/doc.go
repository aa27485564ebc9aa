// Package middleware provides HTTP middleware for the guild roster API.
//
// # Available Middleware
//
//   - RequestID: unique id per request, echoed in X-Request-ID
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a problem-details 500
//   - CORS: origin allow-listing, preflight handling
//   - RateLimit: token bucket limiting per client address
//   - Idempotency: replay protection for slot mutations; a retried
//     assign or swap with the same Idempotency-Key returns the cached
//     response instead of being applied twice
//   - Compress: gzip, skipped for SSE
//
// Middleware composes with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
package middleware
