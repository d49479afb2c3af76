package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// File stores each key as <root>/<key>.json on the local filesystem.
// Useful for single-node deployments that should survive a restart
// without standing up a database.
type File struct {
	root string
}

// NewFile returns a file-backed store rooted at root. The directory is
// created on first write, not here.
func NewFile(root string) *File {
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &File{root: root}
}

func (f *File) path(key string) string {
	return filepath.Join(f.root, key+".json")
}

func (f *File) Get(key string, dest interface{}) (bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("kvstore/file: read %s: %w", key, err)
	}
	if err := decode(key, data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (f *File) Put(key string, value interface{}) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.root, 0o755); err != nil {
		return fmt.Errorf("kvstore/file: mkdir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn value.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("kvstore/file: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("kvstore/file: rename %s: %w", key, err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvstore/file: delete %s: %w", key, err)
	}
	return nil
}
