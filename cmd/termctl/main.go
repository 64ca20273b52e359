package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/termweb/internal/client"
	"github.com/GriffinCanCode/termweb/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/termweb/internal/shared/id"
	"golang.org/x/term"
)

func main() {
	cfg := client.DefaultConfig()
	if url := os.Getenv("TERMWEB_URL"); url != "" {
		cfg.BaseURL = url
	}

	server := flag.String("server", cfg.BaseURL, "termweb server URL")
	command := flag.String("c", "", "Run one command and exit")
	timeout := flag.Duration("timeout", cfg.Timeout, "Per-request timeout")
	flag.Parse()

	cfg.BaseURL = *server
	cfg.Timeout = *timeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// One trace per termctl session
	ctx = tracing.ContextWithTrace(ctx, tracing.TraceID(id.NewRequestID()), "")
	code := run(ctx, client.New(cfg), *command)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, c *client.Client, command string) int {
	if command != "" {
		resp, err := c.Run(ctx, command)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		client.Render(newPipeConsole(os.Stdin, os.Stdout, os.Stderr), resp)
		if resp.Status == "error" {
			return 1
		}
		return 0
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	health, err := c.Health(healthCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot reach server: %v\n", err)
		return 1
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		if err := client.REPL(ctx, c, newPipeConsole(os.Stdin, os.Stdout, os.Stderr), health.Cwd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	con, err := newTTYConsole(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot configure terminal: %v\n", err)
		return 1
	}
	defer con.Close()

	if err := client.REPL(ctx, c, con, health.Cwd); err != nil {
		con.PrintError(err.Error())
		return 1
	}
	return 0
}
