// Package http exposes the shared terminal session over JSON endpoints.
//
// Routes:
//   - GET  /            service description and builtin list
//   - GET  /health      liveness, cwd and tree size
//   - POST /api/command run one command line
//   - GET  /api/stats   running totals from the metrics collector
package http
