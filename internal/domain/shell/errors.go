package shell

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
)

// Kind classifies a command-level failure.
type Kind int

const (
	MissingOperand Kind = iota + 1
	MissingFileOperand
	UnknownCommand
)

// CommandError is a failure detected by the dispatcher before the tree is
// touched.
type CommandError struct {
	Command string
	Kind    Kind
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case MissingOperand:
		return e.Command + ": missing operand"
	case MissingFileOperand:
		return e.Command + ": missing file operand"
	case UnknownCommand:
		return "Unknown command: " + e.Command
	default:
		return fmt.Sprintf("%s: error", e.Command)
	}
}

// Is reports whether target is a *CommandError of the same Kind.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrMissingOperand     = &CommandError{Kind: MissingOperand}
	ErrMissingFileOperand = &CommandError{Kind: MissingFileOperand}
	ErrUnknownCommand     = &CommandError{Kind: UnknownCommand}
)

// Describe renders err as the message a user sees for the named builtin.
func Describe(command string, err error) string {
	var pe *vfs.PathError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	switch pe.Kind {
	case vfs.NotFound:
		if command == "cat" {
			return "cat: file not found"
		}
		return "Path not found"
	case vfs.NotADirectory:
		if command == "cd" {
			return "Not a directory"
		}
		return command + ": parent is not a directory"
	case vfs.IsADirectory:
		if command == "echo" {
			return "echo: target is a directory"
		}
		return command + ": is a directory"
	case vfs.InvalidPath:
		return command + ": invalid path"
	case vfs.ParentNotFound:
		return command + ": parent not found"
	case vfs.AlreadyExists:
		return command + ": already exists"
	}
	return err.Error()
}
