package main

import (
	"fmt"
	"os"
)

// Aggregate folds a finished entry list into counts and search totals.
// File sizes are read from disk here; unreadable sizes count as zero.
// Placeholder entries are not counted as files or directories.
func Aggregate(entries []Entry) Stats {
	var s Stats
	for _, e := range entries {
		switch e.Kind {
		case KindDirectory:
			s.Directories++
		case KindFile:
			s.Files++
			if info, err := os.Stat(e.Path); err == nil {
				s.TotalSize += info.Size()
			}
			matched := 0
			for _, m := range e.Matches {
				if m.Kind == MarkMatch {
					matched++
				}
			}
			if matched > 0 {
				s.MatchingFiles++
				s.TotalMatches += matched
			}
		}
	}
	return s
}

// FormatSize converts bytes to a human-readable string (B, KB, MB, GB, TB).
func FormatSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
