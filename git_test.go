package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGitURL(t *testing.T) {
	assert.True(t, isGitURL("https://github.com/user/tool.git"))
	assert.True(t, isGitURL("git@github.com:user/tool"))
	assert.False(t, isGitURL("https://github.com/user/tool"))
	assert.False(t, isGitURL("./src"))
}

func TestRepoName(t *testing.T) {
	tests := map[string]string{
		"https://github.com/user/tool.git":  "tool",
		"https://github.com/user/tool.git/": "tool",
		"git@github.com:user/tool.git":      "tool",
		"git@host:tool.git":                 "tool",
		".git":                              "repository",
	}
	for in, want := range tests {
		assert.Equal(t, want, repoName(in), in)
	}
}
