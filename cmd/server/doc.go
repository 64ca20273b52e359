// Package main is the entry point for the termweb server.
//
// termweb serves one in-memory shell session over HTTP and WebSocket. Every
// client shares the same filesystem tree and working directory.
//
// The server provides:
//   - POST /api/command for single command lines
//   - GET /api/stream for a WebSocket command stream
//   - GET /health and GET /api/stats for status
//   - GET /metrics for Prometheus
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Listen on the default port 3000
//	./server
//
//	# Start from a seeded tree with debug logs
//	./server -port 8080 -seed ./seed.yaml -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown with a 5s drain
package main
