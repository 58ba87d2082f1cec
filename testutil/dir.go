package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestDir represents a temporary directory holding copy fixtures.
type TestDir struct {
	t    testing.TB
	Root string
}

// NewTestDir creates a new temporary directory.
// Cleanup is automatically registered via t.Cleanup().
func NewTestDir(t testing.TB) *TestDir { //nostyle:repetition
	t.Helper()

	root, err := os.MkdirTemp("", "fcp-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	// Resolve symlinks (macOS /var -> /private/var issue)
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		os.RemoveAll(root)
		t.Fatalf("failed to resolve symlinks: %v", err)
	}

	t.Cleanup(func() {
		// Restore permissions changed by a test so RemoveAll can descend.
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				_ = os.Chmod(path, 0755)
			}
			return nil
		})
		os.RemoveAll(root)
	})

	return &TestDir{
		t:    t,
		Root: root,
	}
}

// Path returns the absolute path to a file in the directory.
func (d *TestDir) Path(relPath string) string {
	return filepath.Join(d.Root, relPath)
}

// CreateFile creates a file with the given content and returns its path.
// It calls t.Fatal on error.
func (d *TestDir) CreateFile(path string, content []byte) string {
	d.t.Helper()
	fullPath := d.Path(path)

	// Create parent directories if needed
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		d.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, 0600); err != nil {
		d.t.Fatalf("failed to create file %s: %v", path, err)
	}
	return fullPath
}

// ReadFile returns the content of a file in the directory.
// It calls t.Fatal on error.
func (d *TestDir) ReadFile(path string) []byte {
	d.t.Helper()
	b, err := os.ReadFile(d.Path(path))
	if err != nil {
		d.t.Fatalf("failed to read file %s: %v", path, err)
	}
	return b
}

// Exists reports whether a file exists in the directory.
func (d *TestDir) Exists(path string) bool {
	_, err := os.Stat(d.Path(path))
	return err == nil
}

// Mkdir creates a subdirectory with the given permission and returns its path.
// It calls t.Fatal on error.
func (d *TestDir) Mkdir(path string, perm os.FileMode) string {
	d.t.Helper()
	fullPath := d.Path(path)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		d.t.Fatalf("failed to create directory %s: %v", path, err)
	}
	// MkdirAll is subject to umask; set the requested bits explicitly.
	if err := os.Chmod(fullPath, perm); err != nil {
		d.t.Fatalf("failed to chmod directory %s: %v", path, err)
	}
	return fullPath
}

// Content returns deterministic content of the given size.
// The pattern repeats every 251 bytes, which does not divide 1024.
func Content(size int) []byte {
	pattern := make([]byte, 251)
	for i := range pattern {
		pattern[i] = byte(i)
	}
	return bytes.Repeat(pattern, size/len(pattern)+1)[:size]
}

// AssertSameFile fails the test unless the two files have identical bytes.
func AssertSameFile(t testing.TB, want, got string) {
	t.Helper()
	w, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read %s: %v", want, err)
	}
	g, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("failed to read %s: %v", got, err)
	}
	if !bytes.Equal(w, g) {
		t.Errorf("%s differs from %s: %d bytes vs %d bytes", got, want, len(g), len(w))
	}
}
