package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (including parents) if it does not exist yet and
// returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// AppConfigDir returns the certprep directory under the user config
// directory, creating it if needed.
func AppConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return EnsureDir(filepath.Join(base, "certprep"))
}
