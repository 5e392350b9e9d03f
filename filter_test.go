package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusion_Nil(t *testing.T) {
	var x *Exclusion
	assert.False(t, x.Excludes("/a/b", "b", false))
}

func TestExclusion_Names(t *testing.T) {
	x, err := NewExclusion("/root", []string{"structure.txt", ""}, nil, false)
	require.NoError(t, err)

	assert.True(t, x.Excludes("/root/structure.txt", "structure.txt", false))
	assert.True(t, x.Excludes("/root/deep/structure.txt", "structure.txt", false))
	assert.False(t, x.Excludes("/root/structure.md", "structure.md", false))
}

func TestExclusion_Patterns(t *testing.T) {
	root := filepath.FromSlash("/work")
	x, err := NewExclusion(root, nil, []string{"*.log", " **/vendor ", "", "build/out"}, false)
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{"debug.log", true},
		{"nested/trace.log", true},
		{"vendor", true},
		{"a/b/vendor", true},
		{"build/out", true},
		{"out", false},
		{"main.go", false},
	}
	for _, tt := range tests {
		path := filepath.Join(root, filepath.FromSlash(tt.rel))
		assert.Equal(t, tt.want, x.Excludes(path, filepath.Base(path), false), tt.rel)
	}
}

func TestExclusion_InvalidPattern(t *testing.T) {
	_, err := NewExclusion("/root", nil, []string{"[abc"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestExclusion_Gitignore(t *testing.T) {
	root := resolvedTempDir(t)
	writeTree(t, root, map[string]string{
		".gitignore": "*.tmp\nbuild/\n",
		"build/":     "",
		"keep.go":    "",
		"x.tmp":      "",
	})

	x, err := NewExclusion(root, nil, nil, true)
	require.NoError(t, err)
	assert.True(t, x.Excludes(filepath.Join(root, "x.tmp"), "x.tmp", false))
	assert.True(t, x.Excludes(filepath.Join(root, "build"), "build", true))
	assert.False(t, x.Excludes(filepath.Join(root, "keep.go"), "keep.go", false))

	off, err := NewExclusion(root, nil, nil, false)
	require.NoError(t, err)
	assert.False(t, off.Excludes(filepath.Join(root, "x.tmp"), "x.tmp", false))

	opts := unlimited()
	opts.Exclude = x
	assert.Equal(t, []string{"└── keep.go"}, entryLines(Traverse(root, opts, nil)))
}

func TestExclusion_GitignoreMissing(t *testing.T) {
	root := resolvedTempDir(t)
	x, err := NewExclusion(root, nil, nil, true)
	require.NoError(t, err)
	assert.False(t, x.Excludes(filepath.Join(root, "a"), "a", false))
}
