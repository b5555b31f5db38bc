// Package storage holds uploaded cliente photos. Photos are addressed by a
// flat file name; Filesystem keeps them in a local directory and S3 in a
// bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/BruksfildServices01/clientes-api/internal/config"
)

// Object is an open photo. Callers must close Body.
type Object struct {
	Name        string
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

type Store interface {
	// Save writes a new photo. It fails if name is already taken.
	Save(ctx context.Context, name string, r io.Reader) error

	// Open returns ErrNotFound when the photo is missing or unreadable.
	Open(ctx context.Context, name string) (*Object, error)

	// RemoveIfPresent deletes the photo only when it exists and is
	// readable. Absence is not an error; removed reports whether a file
	// was deleted.
	RemoveIfPresent(ctx context.Context, name string) (removed bool, err error)
}

// New opens the store selected by cfg.Driver.
func New(cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorageFilesystem:
		return NewFilesystem(cfg.Dir, logger)
	case config.StorageS3:
		client := NewS3Client(cfg.S3)
		return NewS3(client, cfg.S3.Bucket, cfg.S3.Prefix, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
