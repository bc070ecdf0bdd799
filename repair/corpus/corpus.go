// Package corpus provides the text-file I/O and directory traversal
// collaborators cmd/repair needs around the core repair package: turning
// a file on disk into a terminal-symbol sequence, walking a directory of
// corpora in a deterministic order, and dumping the rule list as CSV for
// debugging. None of this is part of the compression core itself.
package corpus

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"
)

// ReadFile reads the entire contents of path from fs as raw bytes.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %q: %w", path, err)
	}
	return data, nil
}

// DecodeRunes reinterprets raw file bytes as a sequence of runes, for
// callers that configured the rune alphabet instead of the byte one.
func DecodeRunes(data []byte) []rune {
	return []rune(string(data))
}

// ReadDir lists the regular files directly inside dir, in lexical
// filename order, matching the original construction's directory-then-
// file iteration order so a directory of corpora compresses in a
// deterministic sequence.
func ReadDir(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: listing %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
