// Package vfs provides the in-memory hierarchical filesystem behind the shell.
//
// The tree is a closed two-armed sum of nodes:
//   - Directory: name-keyed children, listed in lexicographic order
//   - File: a text blob
//
// Every operation addresses a node by an absolute segment path produced by
// Resolve. Paths are never looked up while being resolved, so "..", "." and
// empty segments are gone before the tree is touched.
//
// Errors:
//   - *PathError carries a Kind (NotFound, NotADirectory, IsADirectory,
//     InvalidPath, ParentNotFound, AlreadyExists) and can be matched with
//     errors.Is against the Err* sentinels.
//
// The Tree is not safe for concurrent use. Callers serialize access; see
// package session.
//
// Example Usage:
//
//	tree := vfs.NewTree()
//	_ = tree.Mkdir(vfs.Resolve(nil, "docs"))
//	_ = tree.WriteFile(vfs.Resolve(nil, "docs/readme"), "hi", false)
//	listing, _ := tree.List(vfs.Resolve(nil, "docs")) // "readme"
package vfs
