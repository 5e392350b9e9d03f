package main

import "fmt"

// EntryKind classifies a line of the tree. Placeholder kinds stand in for a
// failure or a cycle and never carry a Path.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindCycle
	KindPermissionDenied
	KindError
)

// IsPlaceholder reports whether the kind is synthetic rather than a real filesystem object.
func (k EntryKind) IsPlaceholder() bool {
	return k == KindCycle || k == KindPermissionDenied || k == KindError
}

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindCycle:
		return "cycle"
	case KindPermissionDenied:
		return "permission-denied"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// MarkKind classifies an item in a file's search results.
type MarkKind int

const (
	MarkMatch    MarkKind = iota // a matching line
	MarkOverflow                 // further matches beyond the per-file cap
	MarkSkipped                  // scanning deliberately not performed
	MarkError                    // the file could not be opened or read
)

// Mark is one search result for a file. Only the fields relevant to Kind are set.
type Mark struct {
	Kind MarkKind
	Line int    // 1-indexed line number for MarkMatch
	Text string // trimmed line text, skip reason or error description
	More int    // count of unshown matches for MarkOverflow
}

// String renders the mark the way it appears in reports.
func (m Mark) String() string {
	switch m.Kind {
	case MarkMatch:
		return fmt.Sprintf("Line %d: %s", m.Line, m.Text)
	case MarkOverflow:
		return fmt.Sprintf("+ %d more matches", m.More)
	case MarkSkipped:
		return "! SKIPPED: " + m.Text
	default:
		return "! ERROR: " + m.Text
	}
}

// Entry is one line of the rendered tree.
type Entry struct {
	Line    string    // prefix, connector and name, e.g. "│   ├── name/"
	Kind    EntryKind // directory, file or a placeholder kind
	Path    string    // absolute path; empty for placeholders
	Detail  string    // failure description for KindError
	Matches []Mark    // search results; only ever set for files and cycle placeholders
}

// IsDir reports whether the entry is a real directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// HasMatch reports whether at least one real matching line was recorded.
func (e Entry) HasMatch() bool {
	for _, m := range e.Matches {
		if m.Kind == MarkMatch {
			return true
		}
	}
	return false
}

// Visible returns the marks that belong in a report. Skip markers only
// suppress scanning and are never displayed.
func (e Entry) Visible() []Mark {
	var out []Mark
	for _, m := range e.Matches {
		if m.Kind != MarkSkipped {
			out = append(out, m)
		}
	}
	return out
}

// Query describes a content search.
type Query struct {
	Text          string
	CaseSensitive bool
	MaxMatches    int             // per-file cap on recorded match lines
	Binary        map[string]bool // lowercase extensions (with dot) never opened; nil uses the built-in set
}

// Options holds the traversal configuration. It is never mutated during a walk.
type Options struct {
	ShowHidden bool
	MaxDepth   int        // negative means unlimited
	Search     *Query     // nil disables content search
	Exclude    *Exclusion // nil excludes nothing
}

// Stats holds aggregated information about a finished tree.
type Stats struct {
	Directories   int
	Files         int
	TotalSize     int64
	MatchingFiles int
	TotalMatches  int
}
