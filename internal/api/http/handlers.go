package http

import (
	"context"
	"net/http"

	"github.com/GriffinCanCode/termweb/internal/domain/shell"
	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/logging"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/termweb/internal/shared/types"
	"github.com/GriffinCanCode/termweb/internal/shared/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint.
const Version = "0.1.0"

// Terminal is the shared session the handlers drive.
type Terminal interface {
	Execute(ctx context.Context, line string) shell.Result
	Status() (string, vfs.Stats)
	Stats() vfs.Stats
}

// Handlers contains all HTTP handlers
type Handlers struct {
	terminal Terminal
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(terminal Terminal, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		terminal: terminal,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root describes the service
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"service":  "termweb",
		"version":  Version,
		"builtins": shell.Builtins(),
	})
}

// Health reports liveness with the session's cwd and tree size
func (h *Handlers) Health(c *gin.Context) {
	cwd, nodes := h.terminal.Status()
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cwd":    cwd,
		"nodes":  nodes,
	})
}

// RunCommand executes one command line against the shared session. Command
// failures are reported in the body with HTTP 200; only malformed requests
// get a 4xx.
func (h *Handlers) RunCommand(c *gin.Context) {
	var req types.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.For(c.Request.Context()).Warn("rejected command request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := utils.ValidateCommand(*req.Command); err != nil {
		h.logger.For(c.Request.Context()).Warn("rejected command", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.terminal.Execute(c.Request.Context(), *req.Command)
	c.JSON(http.StatusOK, res.Response())
}
