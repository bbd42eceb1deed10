package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"./custom.yaml", true},
		{"../shared/config.yaml", true},
		{"/absolute/path.yaml", true},
		{`C:\windows\path.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"report.md", ".docx", "report.docx"},
		{"dir/report.markdown", ".docx", "dir/report.docx"},
		{"noext", ".txt", "noext.txt"},
		{"archive.tar.gz", ".docx", "archive.tar.docx"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.docx")
		if err := WriteFileAtomic(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "content" {
			t.Errorf("content = %q, want %q", got, "content")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.docx")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.docx")
		if err := WriteFileAtomic(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.Contains(e.Name(), ".tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("missing directory fails without partial output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "no-such-dir", "out.docx")
		if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Fatal("expected error for missing directory")
		}
		if FileExists(path) {
			t.Error("partial output file exists after failure")
		}
	})
}
