package storage

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local is the local-filesystem driver.
type Local struct {
	root string // absolute root directory
}

// NewLocal creates a driver rooted at root. A relative root is resolved
// against the working directory.
func NewLocal(root string) *Local {
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &Local{root: root}
}

func (d *Local) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *Local) Root() string { return d.root }

// ── Write ─────────────────────────────────────────────────────────────────────

func (d *Local) Put(path string, content []byte) error {
	return d.PutStream(path, bytes.NewReader(content))
}

func (d *Local) PutStream(path string, r io.Reader) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	return nil
}

// ── Read ──────────────────────────────────────────────────────────────────────

func (d *Local) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(path))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", path, err)
	}
	return data, nil
}

func (d *Local) Exists(path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}

// ── Delete ────────────────────────────────────────────────────────────────────

func (d *Local) Delete(path string) error {
	err := os.Remove(d.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}

// ── Directories ───────────────────────────────────────────────────────────────

func (d *Local) AllFiles(directory string) ([]string, error) {
	absDir := d.abs(directory)
	if _, err := os.Stat(absDir); os.IsNotExist(err) {
		return nil, nil
	}
	var out []string
	err := filepath.WalkDir(absDir, func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(d.root, path)
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	return out, err
}
