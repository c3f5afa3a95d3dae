// Package storage keeps uploaded images on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	pkgerrors "portfolio/pkg/errors"
)

// LocalImageStore implements ports.ImageStore over a directory that is also
// served as static files under urlPrefix.
type LocalImageStore struct {
	dir       string
	urlPrefix string
	logger    *zap.Logger
}

// NewLocalImageStore creates a store writing into dir
func NewLocalImageStore(dir, urlPrefix string, logger *zap.Logger) *LocalImageStore {
	return &LocalImageStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		logger:    logger,
	}
}

// Dir returns the directory images are written to
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// URLFor returns the public URL of a stored file name
func (s *LocalImageStore) URLFor(name string) string {
	return s.urlPrefix + "/" + name
}

// Put writes data to dir/name. The bytes land in a temporary file first so a
// failed copy never leaves a truncated image behind.
func (s *LocalImageStore) Put(ctx context.Context, name string, data io.Reader) (string, int64, error) {
	if err := checkName(name); err != nil {
		return "", 0, err
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	size, err := io.Copy(tmp, data)
	if err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", 0, err
	}

	target := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, target); err != nil {
		return "", 0, fmt.Errorf("rename into %s: %w", target, err)
	}

	s.logger.Debug("Image stored", zap.String("path", target), zap.Int64("bytes", size))
	return s.URLFor(name), size, nil
}

// Exists reports whether a public URL served by this store has a file behind it.
// URLs outside the prefix are reported as present since they are not ours to check.
func (s *LocalImageStore) Exists(url string) bool {
	name, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || checkName(name) != nil {
		return true
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return pkgerrors.NewValidationError(fmt.Sprintf("invalid file name %q", name))
	}
	return nil
}
