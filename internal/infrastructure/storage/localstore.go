package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orgjet/internal/shared/config"
	"orgjet/internal/shared/id"
	"orgjet/internal/shared/logger"
)

// LocalStore writes attachment binaries to a directory on disk and serves
// them back under a public URL prefix. Stored names are random; the original
// file name survives only on the attachment row.
type LocalStore struct {
	uploadDir    string
	publicPrefix string
	logger       logger.Interface
}

func NewLocalStore(cfg config.StorageConfig, logger logger.Interface) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStore{
		uploadDir:    cfg.UploadDir,
		publicPrefix: strings.TrimSuffix(cfg.PublicPrefix, "/"),
		logger:       logger,
	}, nil
}

// Dir returns the directory files are written to. The HTTP layer mounts it as
// a static route.
func (s *LocalStore) Dir() string {
	return s.uploadDir
}

func (s *LocalStore) Save(ctx context.Context, originalName string, content io.Reader, size int64) (string, error) {
	storedName := id.MustGenerate(id.DefaultLength) + sanitizeExt(originalName)
	path := filepath.Join(s.uploadDir, storedName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(content, size))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if written != size {
		os.Remove(path)
		return "", fmt.Errorf("upload truncated: wrote %d of %d bytes", written, size)
	}

	s.logger.Infow("stored attachment file", "stored_name", storedName, "size", size)
	return s.publicPrefix + "/" + storedName, nil
}

func (s *LocalStore) Remove(url string) error {
	storedName, ok := strings.CutPrefix(url, s.publicPrefix+"/")
	if !ok || storedName == "" || strings.Contains(storedName, "/") {
		return fmt.Errorf("url %q is not managed by this store", url)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// sanitizeExt keeps a short, harmless file extension so stored files render
// with the right content type when served statically.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
