// Package output persists rendered binding units.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"stubgen/internal/binding"
)

// WriteError marks a binding unit that could not be persisted. It is scoped
// to a single document; the batch continues past it.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write binding file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Write renders the unit into dir under a name derived from the unit's
// source document and returns the written path. The destination directory
// is created first when absent; creating it repeatedly is safe.
func Write(unit *binding.BindingUnit, dir, packageName string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	name := unit.FileName
	if name == "" {
		name = binding.FileName(unit.DocumentPath)
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	defer file.Close()

	if err := unit.Render(file, packageName); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

// EnsureDir creates the destination container if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s: %w", dir, err)
	}
	return nil
}
