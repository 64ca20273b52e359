package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const clearScreen = "\x1b[H\x1b[2J"

// ttyConsole edits lines in raw mode with history.
type ttyConsole struct {
	fd    int
	state *term.State
	t     *term.Terminal
}

func newTTYConsole(fd int) (*ttyConsole, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	return &ttyConsole{fd: fd, state: state, t: term.NewTerminal(rw, "")}, nil
}

func (c *ttyConsole) ReadLine() (string, error) { return c.t.ReadLine() }
func (c *ttyConsole) SetPrompt(p string)        { c.t.SetPrompt(p) }

func (c *ttyConsole) Print(text string) {
	fmt.Fprintln(c.t, text)
}

func (c *ttyConsole) PrintError(text string) {
	fmt.Fprintf(c.t, "%s%s%s\n", c.t.Escape.Red, text, c.t.Escape.Reset)
}

func (c *ttyConsole) Clear() {
	io.WriteString(os.Stdout, clearScreen)
}

func (c *ttyConsole) Close() error {
	return term.Restore(c.fd, c.state)
}

// pipeConsole reads plain lines, for scripts and redirected input.
type pipeConsole struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

func newPipeConsole(in io.Reader, out, errOut io.Writer) *pipeConsole {
	return &pipeConsole{in: bufio.NewScanner(in), out: out, errOut: errOut}
}

func (c *pipeConsole) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *pipeConsole) SetPrompt(string) {}

func (c *pipeConsole) Print(text string)      { fmt.Fprintln(c.out, text) }
func (c *pipeConsole) PrintError(text string) { fmt.Fprintln(c.errOut, text) }
func (c *pipeConsole) Clear()                 {}
