package rodomark

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.MD", "notes.txt", "readme.markdown"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ListMarkdownFiles(dir)
	if err != nil {
		t.Fatalf("ListMarkdownFiles: %v", err)
	}
	want := []string{"a.MD", "b.md", "readme.markdown"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestListSubdirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "plain.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ListSubdirectories(dir)
	if err != nil {
		t.Fatalf("ListSubdirectories: %v", err)
	}
	want := []string{"alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestListRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ListMarkdownFiles(file); !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("file path: got %v, want ErrNotADirectory", err)
	}
	if _, err := ListSubdirectories(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("missing path: got %v, want ErrNotADirectory", err)
	}
}

func TestLoadMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	content := "# hello\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadMarkdownFile(path)
	if err != nil {
		t.Fatalf("LoadMarkdownFile: %v", err)
	}
	if got != content {
		t.Fatalf("got %q, want %q", got, content)
	}

	if _, err := LoadMarkdownFile(filepath.Join(dir, "absent.md")); !errors.Is(err, ErrRead) {
		t.Fatalf("absent file: got %v, want ErrRead", err)
	}
}
