// Package file stores the content document as a single JSON file.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"portfolio/domain/core/entities"
	"portfolio/infrastructure/persistence"
	pkgerrors "portfolio/pkg/errors"
)

// Repository implements ports.ContentRepository over one JSON file. Writes go
// to a temporary file that is renamed over the original, so readers never
// see a half-written document.
type Repository struct {
	path   string
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewRepository creates a repository for the document at path
func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger,
	}
}

// Path returns the file backing the repository
func (r *Repository) Path() string {
	return r.path
}

// Load reads and decodes the whole document
func (r *Repository) Load(ctx context.Context) (entities.Document, error) {
	r.mu.RLock()
	data, err := os.ReadFile(r.path)
	r.mu.RUnlock()
	if err != nil {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content", err)
	}

	doc, err := persistence.DecodeDocument(data)
	if err != nil {
		return entities.Document{}, pkgerrors.NewStorageError("Failed to load content",
			fmt.Errorf("decode %s: %w", r.path, err))
	}
	return doc, nil
}

// Save replaces the whole document
func (r *Repository) Save(ctx context.Context, doc entities.Document) error {
	data, err := persistence.EncodeDocument(doc)
	if err != nil {
		return pkgerrors.NewStorageError("Failed to save content", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeAtomic(r.path, data); err != nil {
		r.logger.Error("Failed to write content file", zap.String("path", r.path), zap.Error(err))
		return pkgerrors.NewStorageError("Failed to save content", err)
	}

	r.logger.Debug("Content file written", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
