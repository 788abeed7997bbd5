package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where the log file lives on disk.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the log at path. If path is empty, it falls back to
// the location determined by ResolvePath.
func NewManager(path string) (*Manager, error) {
	var err error
	if path == "" {
		path, err = ResolvePath()
		if err != nil {
			return nil, err
		}
	} else {
		path, err = normalizePath(path)
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the log file. The file may not exist yet.
func (m *Manager) Path() string {
	return m.path
}

// EnsureFile guarantees the directory tree and the log file exist and returns the file's path.
func (m *Manager) EnsureFile() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	if err := os.MkdirAll(filepath.Dir(m.path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(m.path, os.O_RDONLY|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("log path %s is a directory", m.path)
	}

	return m.path, nil
}
