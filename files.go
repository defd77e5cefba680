package rodomark

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNotADirectory reports that an enumeration path is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrRead reports an I/O failure reading a file or directory.
	ErrRead = errors.New("read failure")
)

// ListMarkdownFiles returns the names of the Markdown files directly
// inside dir, sorted lexicographically. The extension filter (.md,
// .markdown) is case-insensitive; names keep their original case.
func ListMarkdownFiles(dir string) ([]string, error) {
	entries, err := readDirectory(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".md", ".markdown":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListSubdirectories returns the names of the immediate child directories
// of dir, sorted lexicographically.
func ListSubdirectories(dir string) ([]string, error) {
	entries, err := readDirectory(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadMarkdownFile reads a Markdown file into a string.
func LoadMarkdownFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return string(data), nil
}

func readDirectory(dir string) ([]os.DirEntry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return entries, nil
}
