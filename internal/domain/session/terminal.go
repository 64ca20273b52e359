package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/GriffinCanCode/termweb/internal/domain/shell"
	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/logging"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// Terminal is the one shell session shared by every client.
type Terminal struct {
	mu      sync.Mutex
	state   *shell.State // Protected by mu
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewTerminal creates a session with an empty tree and cwd at root
func NewTerminal(logger *logging.Logger) *Terminal {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Terminal{
		state:  shell.NewState(),
		logger: logger,
	}
}

// WithMetrics adds metrics tracking to the terminal
func (t *Terminal) WithMetrics(metrics *monitoring.Metrics) *Terminal {
	t.metrics = metrics
	t.mu.Lock()
	t.publishTreeSize()
	t.mu.Unlock()
	return t
}

// Execute runs one command line. Commands are serialized: each one observes
// every effect of the commands before it.
func (t *Terminal) Execute(ctx context.Context, line string) shell.Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer := monitoring.NewTimer(t.metrics)
	res := shell.Execute(t.state, line)
	label := metricLabel(res)
	elapsed := timer.Stop(label, string(res.Status))

	if mutates(res.Command) {
		t.publishTreeSize()
	}

	log := t.logger.For(ctx)
	if res.OK() {
		log.Debug("command executed",
			zap.String("command", label),
			zap.String("cwd", res.Cwd),
			zap.Duration("duration", elapsed))
	} else {
		log.Debug("command failed",
			zap.String("command", label),
			zap.String("cwd", res.Cwd),
			zap.Duration("duration", elapsed),
			zap.Error(res.Err))
	}

	return res
}

// Cwd returns the current working directory
func (t *Terminal) Cwd() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.CwdString()
}

// Stats counts the nodes in the tree
func (t *Terminal) Stats() vfs.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.FS.Stats()
}

// Status returns the cwd and tree size as one consistent reading.
func (t *Terminal) Status() (string, vfs.Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.CwdString(), t.state.FS.Stats()
}

// Seed adds entries to the tree. See vfs.Seed for the accepted shapes.
func (t *Terminal) Seed(entries map[string]interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := vfs.Seed(t.state.FS, entries)
	t.publishTreeSize()
	if err != nil {
		return fmt.Errorf("seed tree: %w", err)
	}
	return nil
}

// LoadSeed reads a YAML, TOML or JSON seed file into the tree.
func (t *Terminal) LoadSeed(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := vfs.LoadSeed(t.state.FS, path)
	t.publishTreeSize()
	if err != nil {
		return err
	}

	stats := t.state.FS.Stats()
	t.logger.Info("tree seeded",
		zap.String("path", path),
		zap.Int("directories", stats.Directories),
		zap.Int("files", stats.Files))
	return nil
}

// publishTreeSize must be called with mu held.
func (t *Terminal) publishTreeSize() {
	if t.metrics == nil {
		return
	}
	stats := t.state.FS.Stats()
	t.metrics.SetTreeSize(stats.Directories, stats.Files)
}

// metricLabel keeps the command label set closed.
func metricLabel(res shell.Result) string {
	switch {
	case res.Command == "" && res.OK():
		return "empty"
	case res.Command == "":
		return "invalid"
	case shell.IsBuiltin(res.Command):
		return res.Command
	default:
		return "unknown"
	}
}

// mutates reports whether a builtin can change the tree's shape.
func mutates(command string) bool {
	switch command {
	case "mkdir", "touch", "echo":
		return true
	}
	return false
}
