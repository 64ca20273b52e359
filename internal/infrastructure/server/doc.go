// Package server assembles the terminal service: logger, metrics, tracer,
// the shared session, middleware, routes and the underlying http.Server.
//
// Middleware order:
//  1. gin.Recovery
//  2. tracing (X-Request-ID, X-Span-ID)
//  3. metrics
//  4. CORS
//  5. per-IP rate limiting (optional)
//  6. request body limit
//
// Responses above 1KB are gzipped unless compression is disabled. WebSocket
// upgrades bypass compression.
//
// Example Usage:
//
//	srv, err := server.NewServer(config.LoadOrDefault())
//	go srv.Run()
//	...
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	srv.Shutdown(ctx)
package server
