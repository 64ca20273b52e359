package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/GriffinCanCode/termweb/internal/domain/shell"
	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/monitoring"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteKeepsStateAcrossCalls(t *testing.T) {
	term := NewTerminal(nil)
	ctx := context.Background()

	steps := []struct {
		line   string
		output string
		cwd    string
		status shell.Status
	}{
		{line: "mkdir docs", output: "", cwd: "/", status: shell.StatusOK},
		{line: "cd docs", output: "", cwd: "/docs", status: shell.StatusOK},
		{line: `echo "hi" > note`, output: "", cwd: "/docs", status: shell.StatusOK},
		{line: "cat note", output: "hi", cwd: "/docs", status: shell.StatusOK},
		{line: "cd ..", output: "", cwd: "/", status: shell.StatusOK},
		{line: "ls", output: "docs/", cwd: "/", status: shell.StatusOK},
		{line: "cat nope", output: "cat: file not found", cwd: "/", status: shell.StatusError},
	}

	for _, step := range steps {
		res := term.Execute(ctx, step.line)
		assert.Equal(t, step.output, res.Output, step.line)
		assert.Equal(t, step.cwd, res.Cwd, step.line)
		assert.Equal(t, step.status, res.Status, step.line)
	}

	assert.Equal(t, "/", term.Cwd())
	assert.Equal(t, vfs.Stats{Directories: 2, Files: 1}, term.Stats())
}

func TestExecuteConcurrent(t *testing.T) {
	term := NewTerminal(nil)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			term.Execute(ctx, "mkdir shared")
			term.Execute(ctx, fmt.Sprintf("touch shared/f%02d", i))
			term.Execute(ctx, `echo "x" >> log`)
		}(i)
	}
	wg.Wait()

	// exactly one mkdir won; every touch and append landed
	assert.Equal(t, vfs.Stats{Directories: 2, Files: workers + 1}, term.Stats())

	res := term.Execute(ctx, "cat log")
	require.True(t, res.OK())
	lines := 1
	for _, r := range res.Output {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, workers, lines)
}

func TestExecuteRecordsMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	term := NewTerminal(nil).WithMetrics(metrics)
	ctx := context.Background()

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Directories))

	term.Execute(ctx, "mkdir a")
	term.Execute(ctx, "touch a/b")
	term.Execute(ctx, "frobnicate")
	term.Execute(ctx, `echo "open`)
	term.Execute(ctx, "   ")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("mkdir", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("touch", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("unknown", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("invalid", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("empty", "ok")))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Directories))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Files))
}

func TestStatusMatchesCwdAndStats(t *testing.T) {
	term := NewTerminal(nil)
	ctx := context.Background()

	cwd, stats := term.Status()
	assert.Equal(t, "/", cwd)
	assert.Equal(t, vfs.Stats{Directories: 1}, stats)

	term.Execute(ctx, "mkdir work")
	term.Execute(ctx, "cd work")
	term.Execute(ctx, "touch todo")

	cwd, stats = term.Status()
	assert.Equal(t, "/work", cwd)
	assert.Equal(t, term.Cwd(), cwd)
	assert.Equal(t, vfs.Stats{Directories: 2, Files: 1}, stats)
}

func TestSeed(t *testing.T) {
	term := NewTerminal(nil)

	err := term.Seed(map[string]interface{}{
		"home": map[string]interface{}{
			"readme.txt": "welcome",
		},
		"empty": nil,
	})
	require.NoError(t, err)

	res := term.Execute(context.Background(), "cat /home/readme.txt")
	assert.Equal(t, "welcome", res.Output)
	assert.Equal(t, vfs.Stats{Directories: 2, Files: 2}, term.Stats())

	err = term.Seed(map[string]interface{}{"bad/name": "x"})
	assert.Error(t, err)
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("etc:\n  motd: hello\n"), 0o644))

	term := NewTerminal(nil)
	require.NoError(t, term.LoadSeed(path))
	assert.Equal(t, "hello", term.Execute(context.Background(), "cat etc/motd").Output)

	assert.Error(t, term.LoadSeed(filepath.Join(dir, "missing.yaml")))
}
