package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statline/statline/internal/adapters/fs"
)

func TestWriter_InstallsExecutableScript(t *testing.T) {
	writer := fs.NewWriter()
	path := filepath.Join(t.TempDir(), "bin", "statusline.sh")

	if err := writer.Write(path, "#!/bin/bash\necho hi\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "#!/bin/bash\necho hi\n" {
		t.Errorf("unexpected contents: %q", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("expected executable permissions, got %v", info.Mode())
	}
}

func TestWriter_ReplacesExistingScript(t *testing.T) {
	writer := fs.NewWriter()
	dir := t.TempDir()
	path := filepath.Join(dir, "statusline.sh")

	if err := writer.Write(path, "#!/bin/bash\necho old\n"); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := writer.Write(path, "#!/bin/bash\necho new\n"); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "#!/bin/bash\necho new\n" {
		t.Errorf("unexpected contents: %q", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp leftovers, found %d entries", len(entries))
	}
}
