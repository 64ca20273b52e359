package client

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/GriffinCanCode/termweb/internal/shared/types"
)

// Runner executes command lines
type Runner interface {
	Run(ctx context.Context, command string) (types.CommandResponse, error)
}

// Console is the line-oriented surface the REPL reads from and writes to
type Console interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Print(text string)
	PrintError(text string)
	Clear()
}

// Prompt renders the prompt for a working directory
func Prompt(cwd string) string {
	return cwd + " $ "
}

// REPL reads lines from con and runs each one until input ends or the user
// types exit. Transport failures are reported and the loop continues.
func REPL(ctx context.Context, r Runner, con Console, cwd string) error {
	con.SetPrompt(Prompt(cwd))

	for {
		line, err := con.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		resp, err := r.Run(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			con.PrintError(err.Error())
			continue
		}

		Render(con, resp)
		con.SetPrompt(Prompt(resp.Cwd))
	}
}

// Render writes one response to con
func Render(con Console, resp types.CommandResponse) {
	if resp.Clear {
		con.Clear()
	}
	if resp.Output == "" {
		return
	}
	if resp.Status == "error" {
		con.PrintError(resp.Output)
		return
	}
	con.Print(resp.Output)
}
