package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_CountsAndSizes(t *testing.T) {
	root := resolvedTempDir(t)
	writeTree(t, root, map[string]string{
		"a.txt":    strings.Repeat("a", 10),
		"d1/b.txt": strings.Repeat("b", 20),
		"d2/c.txt": strings.Repeat("c", 30),
	})

	stats := Aggregate(Traverse(root, unlimited(), nil))
	assert.Equal(t, Stats{Directories: 2, Files: 3, TotalSize: 60}, stats)
}

func TestAggregate_SearchTotals(t *testing.T) {
	entries := []Entry{
		{Line: "├── src/", Kind: KindDirectory, Path: "/nonexistent/src"},
		{Line: "│   ├── a.go", Kind: KindFile, Path: "/nonexistent/src/a.go", Matches: []Mark{
			{Kind: MarkMatch, Line: 1, Text: "x"},
			{Kind: MarkMatch, Line: 4, Text: "x"},
			{Kind: MarkOverflow, More: 9},
		}},
		{Line: "│   ├── b.png", Kind: KindFile, Path: "/nonexistent/src/b.png", Matches: []Mark{
			{Kind: MarkSkipped, Text: "Binary file"},
		}},
		{Line: "│   └── c.txt", Kind: KindFile, Path: "/nonexistent/src/c.txt", Matches: []Mark{
			{Kind: MarkError, Text: "permission denied"},
		}},
		{Line: "└── loop/", Kind: KindDirectory, Path: "/nonexistent/loop"},
		{Line: "    ! CYCLIC SYMLINK", Kind: KindCycle, Matches: []Mark{{Kind: MarkSkipped, Text: "Cyclic symlink"}}},
		{Line: "    ! PERMISSION DENIED", Kind: KindPermissionDenied},
	}

	stats := Aggregate(entries)
	assert.Equal(t, Stats{
		Directories:   2,
		Files:         3,
		TotalSize:     0,
		MatchingFiles: 1,
		TotalMatches:  2,
	}, stats)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Aggregate(nil))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1, "1.0 B"},
		{512, "512.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1.0 MB"},
		{5 << 30, "5.0 GB"},
		{1 << 40, "1.0 TB"},
		{3 << 40, "3.0 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in), "FormatSize(%d)", tt.in)
	}
}
