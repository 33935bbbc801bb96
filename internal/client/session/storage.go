// Package session owns the client-side authentication state: one bearer
// token in persistent storage plus the derived "authenticated" flag.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/asalykin/certprep/internal/filex"
)

// TokenStorage persists the session token. It is the only client-side
// persisted state.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// TokenFileName is the fixed storage key for the session token.
const TokenFileName = "exam-prep-tk"

// FileStorage keeps the token in a single file under the user config
// directory.
type FileStorage struct {
	path string
}

// NewFileStorage builds a FileStorage at the given path. An empty path
// resolves to the default location under the user config directory.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		dir, err := filex.AppConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, TokenFileName)
	}
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("token storage: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Load returns the stored token, or "" when none is stored.
func (f *FileStorage) Load() (string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileStorage) Save(token string) error {
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
