package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dropcircle/internal/shared/logger"
)

// FilesystemStore keeps artifact media under a root directory. Writes go to
// a temp file first and are renamed into place, so a crash or failed upload
// never leaves a half-written object at the final path.
type FilesystemStore struct {
	rootDir string
	logger  logger.Interface
}

func NewFilesystemStore(rootDir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &FilesystemStore{
		rootDir: rootDir,
		logger:  logger.NewLogger().With("component", "storage.filesystem"),
	}, nil
}

func (s *FilesystemStore) Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	finalPath := filepath.Join(s.rootDir, key)
	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(finalPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to finalize object: %w", err)
	}

	s.logger.Debugw("stored object",
		"key", key,
		"bytes", written,
		"content_type", contentType)

	return key, nil
}

func (s *FilesystemStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := validateKey(path); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.rootDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	return f, nil
}

func (s *FilesystemStore) Remove(ctx context.Context, path string) error {
	if err := validateKey(path); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.rootDir, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object: %w", err)
	}

	return nil
}

// validateKey rejects path traversal and absolute keys. Keys are generated
// internally, so a violation here means a programming error upstream.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key cannot be empty")
	}
	if filepath.IsAbs(key) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key: %s", key)
	}
	return nil
}
