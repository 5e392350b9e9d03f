package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCandidates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/b/":        "",
		".hidden/x/":  "",
		"file.txt":    "",
		"a/inner.txt": "",
	})

	got, err := directoryCandidates(root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "b")}, got)

	got, err = directoryCandidates(root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, ".hidden"),
		filepath.Join(root, ".hidden", "x"),
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
	}, got)
}
