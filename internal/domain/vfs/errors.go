package vfs

import "fmt"

// Kind classifies a filesystem failure.
type Kind int

const (
	NotFound Kind = iota + 1
	NotADirectory
	IsADirectory
	InvalidPath
	ParentNotFound
	AlreadyExists
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotADirectory:
		return "not a directory"
	case IsADirectory:
		return "is a directory"
	case InvalidPath:
		return "invalid path"
	case ParentNotFound:
		return "parent not found"
	case AlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a *PathError.
var (
	ErrNotFound       = &PathError{Kind: NotFound}
	ErrNotADirectory  = &PathError{Kind: NotADirectory}
	ErrIsADirectory   = &PathError{Kind: IsADirectory}
	ErrInvalidPath    = &PathError{Kind: InvalidPath}
	ErrParentNotFound = &PathError{Kind: ParentNotFound}
	ErrAlreadyExists  = &PathError{Kind: AlreadyExists}
)

// PathError records a failed tree operation and the path it addressed.
type PathError struct {
	Op   string
	Path []string
	Kind Kind
}

func (e *PathError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", Join(e.Path), e.Kind)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, Join(e.Path), e.Kind)
}

// Is reports whether target is a *PathError of the same Kind.
func (e *PathError) Is(target error) bool {
	t, ok := target.(*PathError)
	return ok && t.Kind == e.Kind
}

func pathError(op string, path []string, kind Kind) error {
	return &PathError{Op: op, Path: path, Kind: kind}
}
