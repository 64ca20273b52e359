package vfs

import "strings"

// Resolve turns raw into an absolute segment path. A leading "/" starts from
// the root, anything else from cwd. Empty and "." segments are dropped and
// ".." pops one segment, stopping at the root. The tree is never consulted.
func Resolve(cwd []string, raw string) []string {
	parts := make([]string, 0, len(cwd)+1)
	if !strings.HasPrefix(raw, "/") {
		parts = append(parts, cwd...)
	}

	for _, segment := range strings.Split(raw, "/") {
		switch segment {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, segment)
		}
	}

	return parts
}

// Join renders a segment path for display: "/" for the root.
func Join(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return "/" + strings.Join(path, "/")
}

func splitParent(path []string) ([]string, string) {
	return path[:len(path)-1], path[len(path)-1]
}
