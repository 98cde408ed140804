package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File stores the object at a fixed path. Writes go to a freshly named temp
// file in the same directory, then rename over the canonical path, so readers
// see either the old document or the new one, never a partial write.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the canonical on-disk location.
func (f *File) Path() string { return f.path }

func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("blob: read %s: %w", f.path, err)
	}
	return data, nil
}

func (f *File) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("blob: mkdir %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf("%s.%d.tmp", filepath.Base(f.path), time.Now().UnixNano()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("blob: write temp %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("blob: replace %s: %w", f.path, err)
	}
	return nil
}
