// Package middleware provides the HTTP middleware in front of the terminal API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing, any origin by default
//   - RateLimit: Per-IP token bucket rate limiting
//   - BodyLimit: Request body size cap
//
// Rate Limiting:
//   - Per-IP tracking with periodic cleanup of idle clients
//   - Token bucket algorithm
//   - Configurable RPS and burst capacity
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.CORSFromOrigins(cfg.CORS.Origins)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
