package vfs

import (
	"maps"
	"slices"
)

// Node is either a *Directory or a *File. The set is closed: the unexported
// method keeps other packages from adding arms.
type Node interface {
	node()
}

// Directory owns its children exclusively.
type Directory struct {
	children map[string]Node
}

// File holds text content.
type File struct {
	content string
}

func (*Directory) node() {}
func (*File) node()      {}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{children: make(map[string]Node)}
}

// NewFile creates a file with the given content
func NewFile(content string) *File {
	return &File{content: content}
}

// Child returns the named child
func (d *Directory) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Names returns child names in lexicographic order
func (d *Directory) Names() []string {
	return slices.Sorted(maps.Keys(d.children))
}

func (d *Directory) insert(name string, n Node) {
	d.children[name] = n
}

// IsDir reports whether n is a directory.
func IsDir(n Node) bool {
	_, ok := n.(*Directory)
	return ok
}
