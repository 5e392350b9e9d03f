package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Exclusion decides which names are left out of the tree. A nil Exclusion
// excludes nothing.
type Exclusion struct {
	root     string
	names    map[string]struct{}
	patterns []string
	ignore   gitignore.IgnoreMatcher
}

// NewExclusion builds an exclusion filter rooted at root. names are matched
// exactly against entry names; patterns are doublestar globs matched against
// the entry name and its slash-separated path relative to root. When
// useGitignore is set and root holds a .gitignore, its rules apply as well.
func NewExclusion(root string, names, patterns []string, useGitignore bool) (*Exclusion, error) {
	x := &Exclusion{
		root:  root,
		names: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		if n != "" {
			x.names[n] = struct{}{}
		}
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern '%s'", p)
		}
		x.patterns = append(x.patterns, p)
	}

	if useGitignore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath, root)
			if err != nil {
				console.Warnf("could not parse .gitignore file %s: %v", gitIgnorePath, err)
			} else {
				x.ignore = matcher
			}
		}
	}
	return x, nil
}

// Excludes reports whether the entry at path, named name, must be dropped.
func (x *Exclusion) Excludes(path, name string, isDir bool) bool {
	if x == nil {
		return false
	}
	if _, ok := x.names[name]; ok {
		return true
	}

	if len(x.patterns) > 0 {
		rel := name
		if r, err := filepath.Rel(x.root, path); err == nil {
			rel = filepath.ToSlash(r)
		}
		for _, p := range x.patterns {
			if ok, _ := doublestar.Match(p, name); ok {
				return true
			}
			if ok, _ := doublestar.Match(p, rel); ok {
				return true
			}
		}
	}

	return x.ignore != nil && x.ignore.Match(path, isDir)
}
