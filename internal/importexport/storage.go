package importexport

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

type localStore struct {
	root string
}

// NewLocalStore keeps uploads under root. Paths handed out are relative to
// root so the directory can move between deployments.
func NewLocalStore(root string) FileStore {
	return &localStore{root: root}
}

// resolve anchors path at root; cleaning it as an absolute path drops any
// leading "..".
func (s *localStore) resolve(path string) string {
	return filepath.Join(s.root, filepath.Clean("/"+path))
}

func (s *localStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	full := s.resolve(name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Clean(name)), nil
}

func (s *localStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(s.resolve(path))
}

func (s *localStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(s.resolve(path)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
