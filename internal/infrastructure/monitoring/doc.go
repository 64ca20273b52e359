/*
Package monitoring provides Prometheus metrics for the terminal service.

# Overview

Every Metrics value owns a private registry, so several collectors can coexist
in one process (tests construct one per server).

# Features

- HTTP request metrics (latency, throughput, size)
- Command metrics by builtin and outcome
- Tree size gauges (directories, files)
- WebSocket connection and message metrics
- Uptime and Go runtime collectors

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics)
	// ... run the command ...
	timer.Stop("ls", "ok")
*/
package monitoring
