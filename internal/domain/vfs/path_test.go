package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cwd  []string
		raw  string
		want []string
	}{
		{name: "parent of root stays at root", cwd: nil, raw: "..", want: []string{}},
		{name: "sibling via parent", cwd: []string{"a", "b"}, raw: "../c", want: []string{"a", "c"}},
		{name: "absolute ignores cwd", cwd: []string{"a"}, raw: "/x/y", want: []string{"x", "y"}},
		{name: "relative appends", cwd: []string{"a"}, raw: "b", want: []string{"a", "b"}},
		{name: "dot and empty segments dropped", cwd: nil, raw: "./a//b/.", want: []string{"a", "b"}},
		{name: "cannot climb past root", cwd: []string{"a"}, raw: "../../../b", want: []string{"b"}},
		{name: "bare slash is root", cwd: []string{"a", "b"}, raw: "/", want: []string{}},
		{name: "empty string is cwd", cwd: []string{"a"}, raw: "", want: []string{"a"}},
		{name: "dot dot inside absolute", cwd: nil, raw: "/a/b/../c", want: []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.cwd, tt.raw))
		})
	}
}

func TestResolveDoesNotAliasCwd(t *testing.T) {
	cwd := make([]string, 1, 4)
	cwd[0] = "a"

	got := Resolve(cwd, "b")
	got[0] = "changed"

	assert.Equal(t, []string{"a"}, cwd)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/", Join(nil))
	assert.Equal(t, "/", Join([]string{}))
	assert.Equal(t, "/a", Join([]string{"a"}))
	assert.Equal(t, "/a/b", Join([]string{"a", "b"}))
}
