package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store is a keyed blob source fixtures can be read from and published to.
type Store interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

var (
	_ Store = (*MinIOStorage)(nil)
	_ Store = (*FileStorage)(nil)
)

// FileStorage resolves keys relative to a local directory.
type FileStorage struct {
	Dir string
}

func (f *FileStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.Dir, clean), nil
}

func (f *FileStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (f *FileStorage) Put(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	out, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
