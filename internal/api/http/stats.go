package http

import (
	"net/http"
	"time"

	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
	"github.com/gin-gonic/gin"
)

// StatsSnapshot is the JSON view of the service's running totals
type StatsSnapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Tree      vfs.Stats    `json:"tree"`
	Summary   StatsSummary `json:"summary"`
}

// StatsSummary provides high-level metrics
type StatsSummary struct {
	TotalRequests     int64   `json:"total_requests"`
	ErrorRate         float64 `json:"error_rate"`
	TotalCommands     int64   `json:"total_commands"`
	FailedCommands    int64   `json:"failed_commands"`
	AverageCommandMs  float64 `json:"average_command_ms"`
	ActiveConnections int64   `json:"active_connections"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
}

// Stats returns a JSON summary of request, command and tree metrics
func (h *Handlers) Stats(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}

	c.JSON(http.StatusOK, StatsSnapshot{
		Timestamp: time.Now(),
		Tree:      h.terminal.Stats(),
		Summary:   h.summary(),
	})
}

func (h *Handlers) summary() StatsSummary {
	snap := h.metrics.Snapshot()

	var errorRate float64
	if snap.TotalRequests > 0 {
		errorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}

	var avgCommand float64
	if snap.TotalCommands > 0 {
		avgCommand = snap.CommandDuration / float64(snap.TotalCommands) * 1000
	}

	return StatsSummary{
		TotalRequests:     snap.TotalRequests,
		ErrorRate:         errorRate,
		TotalCommands:     snap.TotalCommands,
		FailedCommands:    snap.FailedCommands,
		AverageCommandMs:  avgCommand,
		ActiveConnections: snap.ActiveStreams,
		UptimeSeconds:     h.metrics.Uptime().Seconds(),
	}
}
