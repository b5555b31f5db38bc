package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

type Filesystem struct {
	dir    string
	logger *slog.Logger
}

// NewFilesystem resolves dir to an absolute path and creates it if needed.
func NewFilesystem(dir string, logger *slog.Logger) (*Filesystem, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads dir required")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve uploads dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &Filesystem{
		dir:    abs,
		logger: logger.With("component", "storage", "driver", "filesystem"),
	}, nil
}

func (f *Filesystem) Dir() string {
	return f.dir
}

func (f *Filesystem) Save(ctx context.Context, name string, r io.Reader) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}
	f.logger.Info("saving photo", "path", path)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func (f *Filesystem) Open(ctx context.Context, name string) (*Object, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, ErrNotFound
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, ErrNotFound
	}

	return &Object{
		Name:        name,
		Body:        file,
		Size:        info.Size(),
		ContentType: contentType(name),
	}, nil
}

func (f *Filesystem) RemoveIfPresent(ctx context.Context, name string) (bool, error) {
	path, err := f.path(name)
	if err != nil {
		return false, err
	}

	// só apaga se existe e é legível
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", name, err)
	}
	info, err := file.Stat()
	file.Close()
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return false, ErrPermissionDenied
		}
		return false, fmt.Errorf("remove %s: %w", name, err)
	}

	f.logger.Info("photo removed", "path", path)
	return true, nil
}

func (f *Filesystem) path(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, name), nil
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

var _ Store = (*Filesystem)(nil)
