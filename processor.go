package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	branchConnector = "├── "
	cornerConnector = "└── "
	branchIndent    = "│   "
	cornerIndent    = "    "
)

// ProgressReporter observes the directories being scanned. It has no effect
// on the traversal outcome.
type ProgressReporter interface {
	Scanning(path string)
}

// walker carries the state of one top-level traversal. The visited set is
// shared by every recursive call so a directory reached through any route
// is listed only once.
type walker struct {
	opts     Options
	visited  map[string]struct{}
	progress ProgressReporter
}

// child is a listed directory entry that survived filtering.
type child struct {
	name  string
	path  string
	isDir bool
}

// Traverse walks root depth-first and returns the tree entries in display
// order. root must already have been validated as a directory. Filesystem
// failures are turned into placeholder entries; nothing is returned as an error.
func Traverse(root string, opts Options, progress ProgressReporter) []Entry {
	w := &walker{
		opts:     opts,
		visited:  make(map[string]struct{}),
		progress: progress,
	}
	return w.walk(root, "", 0)
}

// walk lists path and everything below it, drawing connectors after prefix.
func (w *walker) walk(path, prefix string, depth int) []Entry {
	canonical, err := canonicalPath(path)
	if err != nil {
		return []Entry{errorEntry(prefix, err)}
	}

	if _, seen := w.visited[canonical]; seen {
		return []Entry{{
			Line:    prefix + "! CYCLIC SYMLINK",
			Kind:    KindCycle,
			Matches: []Mark{{Kind: MarkSkipped, Text: "Cyclic symlink"}},
		}}
	}
	w.visited[canonical] = struct{}{}

	if w.progress != nil {
		w.progress.Scanning(canonical)
	}

	children, err := w.list(canonical)
	if err != nil {
		return []Entry{listingErrorEntry(prefix, err)}
	}

	var entries []Entry
	for i, c := range children {
		connector, indent := branchConnector, branchIndent
		if i == len(children)-1 {
			connector, indent = cornerConnector, cornerIndent
		}

		entry := Entry{
			Line: prefix + connector + c.name,
			Kind: KindFile,
			Path: c.path,
		}
		if c.isDir {
			entry.Line += "/"
			entry.Kind = KindDirectory
		} else if w.opts.Search != nil {
			entry.Matches = SearchFile(c.path, *w.opts.Search)
		}
		entries = append(entries, entry)

		if c.isDir && (w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth) {
			entries = append(entries, w.walk(c.path, prefix+indent, depth+1)...)
		}
	}
	return entries
}

// list reads the direct children of dir, drops hidden and excluded names and
// sorts directories before files, each group by name.
func (w *walker) list(dir string) ([]child, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	children := make([]child, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		if !w.opts.ShowHidden && isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			// Symlinks are followed; a dangling link is listed as a file.
			if info, statErr := os.Stat(path); statErr == nil {
				isDir = info.IsDir()
			}
		}

		if w.opts.Exclude.Excludes(path, name, isDir) {
			continue
		}
		children = append(children, child{name: name, path: path, isDir: isDir})
	}

	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		return children[i].name < children[j].name
	})
	return children, nil
}

// canonicalPath returns path made absolute with every symlink resolved.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// listingErrorEntry converts a failure to list a directory into its placeholder.
func listingErrorEntry(prefix string, err error) Entry {
	if errors.Is(err, fs.ErrPermission) {
		return Entry{Line: prefix + "! PERMISSION DENIED", Kind: KindPermissionDenied}
	}
	return errorEntry(prefix, err)
}

func errorEntry(prefix string, err error) Entry {
	return Entry{
		Line:   prefix + "! ERROR: " + err.Error(),
		Kind:   KindError,
		Detail: err.Error(),
	}
}

// isHidden checks if a name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}
