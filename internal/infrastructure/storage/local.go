package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
)

// ErrInvalidPath is returned for object paths that would escape the storage root.
var ErrInvalidPath = errors.New("invalid object path")

// LocalStorage keeps evidence on the local filesystem under root and serves
// it from publicBaseURL.
type LocalStorage struct {
	root          string
	publicBaseURL string
}

var _ domainRepo.EvidenceStorage = (*LocalStorage)(nil)

// NewLocalStorage creates the root directory if needed.
func NewLocalStorage(root, publicBaseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalStorage{root: root, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Root is the directory objects are written to.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) resolve(objectPath string) (string, error) {
	clean := path.Clean("/" + objectPath)
	if clean == "/" || strings.Contains(objectPath, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, objectPath)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (s *LocalStorage) Upload(ctx context.Context, objectPath string, body io.Reader, _ int64, _ string) error {
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create evidence dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create evidence file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("write evidence file: %w", err)
	}
	return f.Close()
}

func (s *LocalStorage) URL(_ context.Context, objectPath string) (string, error) {
	if _, err := s.resolve(objectPath); err != nil {
		return "", err
	}
	return s.publicBaseURL + "/" + strings.TrimPrefix(objectPath, "/"), nil
}

// Delete is idempotent: a missing object is not an error.
func (s *LocalStorage) Delete(_ context.Context, objectPath string) error {
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete evidence file: %w", err)
	}
	return nil
}

// ListOlderThan walks the directory named by prefix. Paths are returned
// relative to the storage root.
func (s *LocalStorage) ListOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]domainRepo.StoredObject, error) {
	dir := s.root
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		full, err := s.resolve(prefix)
		if err != nil {
			return nil, err
		}
		dir = full
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var out []domainRepo.StoredObject
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		out = append(out, domainRepo.StoredObject{
			Path:       filepath.ToSlash(rel),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	return out, err
}
