package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultBinaryExtensions lists extensions whose content is never searched:
// object code, images, audio/video, archives and office documents.
var defaultBinaryExtensions = map[string]bool{
	".pyc": true, ".exe": true, ".dll": true, ".so": true, ".o": true, ".a": true, ".lib": true, ".pdb": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".tiff": true, ".webp": true,
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true, ".mp4": true, ".avi": true, ".mkv": true,
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".7z": true, ".rar": true,
	".pdf": true, ".docx": true, ".xlsx": true, ".pptx": true,
}

// Filetypes holds user-supplied file type definitions from filetypes.yml.
type Filetypes struct {
	Binary []string `yaml:"binary"` // extra extensions to treat as binary, e.g. ".psd"
}

// filetypesSearchPaths returns the directories checked for filetypes.yml.
func filetypesSearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "dirtree"))
	}
	return append(paths, ".")
}

// loadFiletypes reads the first filetypes.yml found in dirs. A missing file
// yields an empty definition and no error.
func loadFiletypes(dirs []string) (*Filetypes, error) {
	var filePath string
	for _, d := range dirs {
		candidate := filepath.Join(d, "filetypes.yml")
		if _, err := os.Stat(candidate); err == nil {
			filePath = candidate
			break
		}
	}
	if filePath == "" {
		return &Filetypes{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading filetypes file %s: %w", filePath, err)
	}

	var ft Filetypes
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("error parsing filetypes file %s: %w", filePath, err)
	}
	return &ft, nil
}

// binaryExtensionSet merges extra extensions into the built-in set.
// Extensions are lowercased and given a leading dot when missing.
func binaryExtensionSet(extra ...[]string) map[string]bool {
	set := make(map[string]bool, len(defaultBinaryExtensions))
	for ext := range defaultBinaryExtensions {
		set[ext] = true
	}
	for _, list := range extra {
		for _, ext := range list {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			set[ext] = true
		}
	}
	return set
}
