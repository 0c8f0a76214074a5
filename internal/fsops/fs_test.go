package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	t.Run("existing directory", func(t *testing.T) {
		got, err := fs.Exists(dir)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !got {
			t.Error("expected true for an existing directory")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		got, err := fs.Exists(filepath.Join(dir, "nope"))
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if got {
			t.Error("expected false for a missing path")
		}
	})

	t.Run("broken symlink still counts as present", func(t *testing.T) {
		link := filepath.Join(dir, "dangling")
		if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		got, err := fs.Exists(link)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !got {
			t.Error("expected true for a dangling symlink, Exists must not follow links")
		}
	})
}

func TestRealFS_Rename(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatalf("failed to create src: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "file.txt"), []byte("contents"), 0644); err != nil {
		t.Fatalf("failed to seed src: %v", err)
	}

	dst := filepath.Join(dir, "dst")
	if err := fs.Rename(src, dst); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Errorf("src should be gone, lstat err = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "file.txt"))
	if err != nil {
		t.Fatalf("failed to read moved file: %v", err)
	}
	if string(data) != "contents" {
		t.Errorf("moved contents = %q, want %q", data, "contents")
	}
}

func TestRealFS_RenameMissingSourceFails(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	err := fs.Rename(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Error("expected an error renaming a missing source")
	}
}
