package vfs

import "strings"

// Tree is the filesystem rooted at a single directory.
type Tree struct {
	root *Directory
}

// Stats counts the nodes below the root.
type Stats struct {
	Directories int `json:"directories"`
	Files       int `json:"files"`
}

// NewTree creates a tree holding only an empty root
func NewTree() *Tree {
	return &Tree{root: NewDirectory()}
}

// Lookup walks path from the root. It reports false when a segment is
// missing or an interior segment names a file.
func (t *Tree) Lookup(path []string) (Node, bool) {
	var current Node = t.root
	for _, segment := range path {
		dir, ok := current.(*Directory)
		if !ok {
			return nil, false
		}
		current, ok = dir.Child(segment)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// IsDir reports whether path names a directory.
func (t *Tree) IsDir(path []string) (bool, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return false, pathError("stat", path, NotFound)
	}
	return IsDir(n), nil
}

// List renders the entries at path. Directory entries are suffixed with "/"
// and joined by two spaces. A file lists as its own name.
func (t *Tree) List(path []string) (string, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return "", pathError("list", path, NotFound)
	}

	switch n := n.(type) {
	case *Directory:
		names := n.Names()
		entries := make([]string, 0, len(names))
		for _, name := range names {
			child, _ := n.Child(name)
			if IsDir(child) {
				name += "/"
			}
			entries = append(entries, name)
		}
		return strings.Join(entries, "  "), nil
	case *File:
		if len(path) == 0 {
			return "", nil
		}
		return path[len(path)-1], nil
	}
	return "", pathError("list", path, NotFound)
}

// Mkdir creates one empty directory. Missing parents are not created.
func (t *Tree) Mkdir(path []string) error {
	parent, name, err := t.parentOf("mkdir", path)
	if err != nil {
		return err
	}
	if _, exists := parent.Child(name); exists {
		return pathError("mkdir", path, AlreadyExists)
	}
	parent.insert(name, NewDirectory())
	return nil
}

// Touch creates an empty file. Touching an existing file changes nothing.
func (t *Tree) Touch(path []string) error {
	parent, name, err := t.parentOf("touch", path)
	if err != nil {
		return err
	}
	if existing, exists := parent.Child(name); exists {
		if IsDir(existing) {
			return pathError("touch", path, IsADirectory)
		}
		return nil
	}
	parent.insert(name, NewFile(""))
	return nil
}

// ReadFile returns the content of the file at path.
func (t *Tree) ReadFile(path []string) (string, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return "", pathError("read", path, NotFound)
	}
	switch n := n.(type) {
	case *File:
		return n.content, nil
	case *Directory:
		return "", pathError("read", path, IsADirectory)
	}
	return "", pathError("read", path, NotFound)
}

// WriteFile stores content at path, creating the file when absent. With
// appendMode set and existing non-empty content, a single "\n" separates the
// old content from the new.
func (t *Tree) WriteFile(path []string, content string, appendMode bool) error {
	parent, name, err := t.parentOf("write", path)
	if err != nil {
		return err
	}

	existing, exists := parent.Child(name)
	if !exists {
		parent.insert(name, NewFile(content))
		return nil
	}

	file, ok := existing.(*File)
	if !ok {
		return pathError("write", path, IsADirectory)
	}
	switch {
	case !appendMode:
		file.content = content
	case file.content == "":
		file.content = content
	default:
		file.content += "\n" + content
	}
	return nil
}

// Stats walks the tree and counts its directories, root included, and files.
func (t *Tree) Stats() Stats {
	s := Stats{Directories: 1}
	var walk func(d *Directory)
	walk = func(d *Directory) {
		for _, child := range d.children {
			switch c := child.(type) {
			case *Directory:
				s.Directories++
				walk(c)
			case *File:
				s.Files++
			}
		}
	}
	walk(t.root)
	return s
}

// parentOf validates path for a create-style operation and returns the
// directory that will hold the final segment.
func (t *Tree) parentOf(op string, path []string) (*Directory, string, error) {
	if len(path) == 0 {
		return nil, "", pathError(op, path, InvalidPath)
	}
	parentPath, name := splitParent(path)
	n, ok := t.Lookup(parentPath)
	if !ok {
		return nil, "", pathError(op, path, ParentNotFound)
	}
	dir, ok := n.(*Directory)
	if !ok {
		return nil, "", pathError(op, path, NotADirectory)
	}
	return dir, name, nil
}
