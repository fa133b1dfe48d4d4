// Package fs provides the filesystem adapter that installs generated
// scripts.
package fs

import (
	"os"
	"path/filepath"

	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptWriter = (*Writer)(nil)

// Writer implements ports.ScriptWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write installs the script at path. A host may point its status line at the
// installed file while we rewrite it, so the replacement goes through a temp
// file and a rename.
func (w *Writer) Write(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp script file")
	}

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write script")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temp script file")
	}

	if err := os.Chmod(tmp.Name(), 0o755); err != nil { //nolint:gosec // The script must be executable
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to chmod script")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to install script"), "path", path)
	}
	return nil
}
