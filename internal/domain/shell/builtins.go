package shell

import (
	"strings"

	"github.com/GriffinCanCode/termweb/internal/domain/vfs"
)

var helpText = strings.Join([]string{
	"Available commands:",
	"  pwd",
	"  ls [path]",
	"  cd [path]",
	"  mkdir <name>...",
	"  touch <name>...",
	"  cat <file>...",
	"  echo <text> [> file | >> file]",
	"  clear",
	"  help",
}, "\n")

func runHelp(_ *State, _ []string) (reply, error) {
	return reply{output: helpText}, nil
}

func runPwd(s *State, _ []string) (reply, error) {
	return reply{output: s.CwdString()}, nil
}

func runLs(s *State, args []string) (reply, error) {
	path := s.Cwd
	if len(args) > 0 && args[0] != "" {
		path = s.resolve(args[0])
	}

	listing, err := s.FS.List(path)
	if err != nil {
		return reply{}, err
	}
	return reply{output: listing}, nil
}

func runCd(s *State, args []string) (reply, error) {
	target := "/"
	if len(args) > 0 {
		target = args[0]
	}

	path := s.resolve(target)
	isDir, err := s.FS.IsDir(path)
	if err != nil {
		return reply{}, err
	}
	if !isDir {
		return reply{}, &vfs.PathError{Op: "cd", Path: path, Kind: vfs.NotADirectory}
	}

	s.Cwd = path
	return reply{}, nil
}

// eachPath applies op to every argument in order and stops at the first
// failure. Paths applied before the failure stay applied.
func eachPath(s *State, command string, args []string, op func([]string) error) (reply, error) {
	if len(args) == 0 {
		return reply{}, &CommandError{Command: command, Kind: MissingOperand}
	}
	for _, arg := range args {
		if err := op(s.resolve(arg)); err != nil {
			return reply{}, err
		}
	}
	return reply{}, nil
}

func runMkdir(s *State, args []string) (reply, error) {
	return eachPath(s, "mkdir", args, s.FS.Mkdir)
}

func runTouch(s *State, args []string) (reply, error) {
	return eachPath(s, "touch", args, s.FS.Touch)
}

func runCat(s *State, args []string) (reply, error) {
	if len(args) == 0 {
		return reply{}, &CommandError{Command: "cat", Kind: MissingOperand}
	}

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		content, err := s.FS.ReadFile(s.resolve(arg))
		if err != nil {
			return reply{}, err
		}
		parts = append(parts, content)
	}
	return reply{output: strings.Join(parts, "\n")}, nil
}

func runEcho(s *State, args []string) (reply, error) {
	marker := -1
	for i, arg := range args {
		if arg == ">" || arg == ">>" {
			marker = i
			break
		}
	}
	if marker < 0 {
		return reply{output: strings.Join(args, " ")}, nil
	}
	if marker+1 >= len(args) {
		return reply{}, &CommandError{Command: "echo", Kind: MissingFileOperand}
	}

	content := strings.Join(args[:marker], " ")
	path := s.resolve(args[marker+1])
	if err := s.FS.WriteFile(path, content, args[marker] == ">>"); err != nil {
		return reply{}, err
	}
	return reply{}, nil
}

func runClear(_ *State, _ []string) (reply, error) {
	return reply{clear: true}, nil
}
