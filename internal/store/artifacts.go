package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a named artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// ArtifactStore persists opaque named blobs such as fitted model state.
type ArtifactStore interface {
	// Put stores data under name, replacing any previous content atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the content stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Exists reports whether name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// Delete removes name. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error
}

// FileStore implements ArtifactStore on a local directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed artifact store rooted at dir.
// The directory is created lazily on the first Put.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the root directory of the store.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Put writes data to a temporary file and renames it into place.
func (s *FileStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if removeErr := os.Remove(tmpName); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			slog.Warn("Failed to remove temp artifact", "path", tmpName, "error", removeErr)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync artifact %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifact %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod artifact %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename artifact %s: %w", name, err)
	}
	return nil
}

// Get reads the named artifact.
func (s *FileStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}

// Exists reports whether the named artifact is a regular file in the store.
func (s *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := s.path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat artifact %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

// Delete removes the named artifact if present.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete artifact %s: %w", name, err)
	}
	return nil
}
