package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/qlf-seminar/backend/internal/config"
)

// Storage abstracts where uploaded panelist photos live.
type Storage interface {
	// Save stores data under key (for example "panelists/<uuid>.jpg") and
	// returns the public URL of the stored object.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the object stored under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir, cfg.URLPrefix), nil
	case "s3":
		return NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
