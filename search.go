package main

import (
	"bufio"
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SearchFile scans the file at path line by line for q.Text and returns the
// marks to attach to its entry. At most q.MaxMatches match lines are kept;
// when more exist a single overflow mark reports how many were left out.
// Files with a known binary extension are never opened. Open and read
// failures become an error mark; malformed text is decoded with replacement
// characters instead of failing.
func SearchFile(path string, q Query) []Mark {
	if isBinaryName(path, q.Binary) {
		return []Mark{{Kind: MarkSkipped, Text: "Binary file"}}
	}

	f, err := os.Open(path)
	if err != nil {
		return []Mark{{Kind: MarkError, Text: err.Error()}}
	}
	defer f.Close()

	// BOMOverride picks UTF-16 when a BOM says so and otherwise decodes
	// UTF-8, replacing invalid bytes with U+FFFD.
	decoded := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanTextLines)

	needle := q.Text
	if !q.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	var marks []Mark
	found := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		haystack := line
		if !q.CaseSensitive {
			haystack = strings.ToLower(line)
		}
		if strings.Contains(haystack, needle) {
			found++
			if found <= q.MaxMatches {
				marks = append(marks, Mark{Kind: MarkMatch, Line: lineNum, Text: strings.TrimSpace(line)})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return append(marks, Mark{Kind: MarkError, Text: err.Error()})
	}

	if found > q.MaxMatches {
		marks = append(marks, Mark{Kind: MarkOverflow, More: found - q.MaxMatches})
	}
	return marks
}

// scanTextLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a
// lone "\r". The terminator is not part of the token.
func scanTextLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing "\r" may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// isBinaryName reports whether the extension of name is in the binary set.
func isBinaryName(name string, set map[string]bool) bool {
	if set == nil {
		set = defaultBinaryExtensions
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext != "" && set[ext]
}
