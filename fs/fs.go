// Package fs provides file system locations and document output.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/codereview"
)

// AppName names the application's XDG directories.
const AppName = "codereview"

// DefaultStateDir returns the directory holding the theme database and log.
// Uses XDG_STATE_HOME, which defaults to ~/.local/state.
func DefaultStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Compile-time interface verification.
var _ codereview.DocumentSaver = (*DocumentSaver)(nil)

// DocumentSaver writes exported documents into a directory.
type DocumentSaver struct {
	dir string
}

// NewDocumentSaver creates a saver writing into dir. An empty dir means the
// working directory.
func NewDocumentSaver(dir string) *DocumentSaver {
	if dir == "" {
		dir = "."
	}
	return &DocumentSaver{dir: dir}
}

// Save writes the document under its own name and returns the path written.
// An existing file with the same name is replaced.
func (s *DocumentSaver) Save(doc *codereview.Document) (string, error) {
	if doc == nil {
		return "", codereview.ErrNoReport
	}
	if doc.Name == "" || filepath.Base(doc.Name) != doc.Name {
		return "", fmt.Errorf("invalid document name %q", doc.Name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.dir, doc.Name)
	tmp, err := os.CreateTemp(s.dir, "."+doc.Name+".*")
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc.Data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}

// ReadSource returns the contents of a file selected for review.
func ReadSource(f *codereview.File) (string, error) {
	if f == nil {
		return "", codereview.ErrNoFile
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", f.Name, err)
		}
		return "", err
	}
	return string(data), nil
}
