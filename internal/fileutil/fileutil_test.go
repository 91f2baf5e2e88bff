package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masaomi/html2png/internal/fileutil"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not end with .html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q, want <html></html>", data)
	}
}

func TestWriteTempFile_CleanupRemovesFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("x", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %s still exists after cleanup", path)
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid html", "html", nil},
		{"valid png", "png", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"forward slash", "a/b", fileutil.ErrExtensionPathTraversal},
		{"backslash", "a\\b", fileutil.ErrExtensionPathTraversal},
		{"null byte", "a\x00b", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists() = false for existing file")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for missing file")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "sized.bin")
	if err := os.WriteFile(file, make([]byte, 2048), 0600); err != nil {
		t.Fatal(err)
	}

	size, err := fileutil.FileSize(file)
	if err != nil {
		t.Fatalf("FileSize() error = %v", err)
	}
	if size != 2048 {
		t.Errorf("FileSize() = %d, want 2048", size)
	}

	if _, err := fileutil.FileSize(filepath.Join(dir, "missing.bin")); err == nil {
		t.Error("FileSize() = nil error for missing file")
	}
	if _, err := fileutil.FileSize(dir); err == nil {
		t.Error("FileSize() = nil error for directory")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"work", false},
		{"my-config", false},
		{"./custom.yaml", true},
		{"../shared/conf.yaml", true},
		{"/absolute/path.yaml", true},
		{"sub/dir", true},
		{`C:\windows\path.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
