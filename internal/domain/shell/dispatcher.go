package shell

import (
	"maps"
	"slices"
	"strings"

	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
)

// State is what a command runs against: the tree and the working directory.
// It is not safe for concurrent use.
type State struct {
	FS  *vfs.Tree
	Cwd []string
}

// NewState creates a state with an empty tree rooted at "/"
func NewState() *State {
	return &State{FS: vfs.NewTree(), Cwd: []string{}}
}

// CwdString renders the working directory
func (s *State) CwdString() string {
	return vfs.Join(s.Cwd)
}

func (s *State) resolve(raw string) []string {
	return vfs.Resolve(s.Cwd, raw)
}

// reply is a successful builtin's effect on the result.
type reply struct {
	output string
	clear  bool
}

type builtin func(s *State, args []string) (reply, error)

var builtins = map[string]builtin{
	"help":  runHelp,
	"pwd":   runPwd,
	"ls":    runLs,
	"cd":    runCd,
	"mkdir": runMkdir,
	"touch": runTouch,
	"cat":   runCat,
	"echo":  runEcho,
	"clear": runClear,
}

// Builtins returns the recognized command names in lexicographic order.
func Builtins() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// IsBuiltin reports whether name is a recognized command
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Execute runs one command line against s. It never fails: errors become a
// Result with StatusError.
func Execute(s *State, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return s.ok("", reply{})
	}

	tokens, err := Tokenize(line)
	if err != nil {
		return s.fail("", err, err.Error())
	}
	if len(tokens) == 0 {
		return s.ok("", reply{})
	}

	name, args := tokens[0], tokens[1:]
	run, ok := builtins[name]
	if !ok {
		err := &CommandError{Command: name, Kind: UnknownCommand}
		return s.fail(name, err, err.Error())
	}

	rep, err := run(s, args)
	if err != nil {
		return s.fail(name, err, Describe(name, err))
	}
	return s.ok(name, rep)
}

func (s *State) ok(command string, rep reply) Result {
	return Result{
		Output:  rep.output,
		Cwd:     s.CwdString(),
		Status:  StatusOK,
		Clear:   rep.clear,
		Command: command,
	}
}

func (s *State) fail(command string, err error, message string) Result {
	return Result{
		Output:  message,
		Cwd:     s.CwdString(),
		Status:  StatusError,
		Command: command,
		Err:     err,
	}
}
