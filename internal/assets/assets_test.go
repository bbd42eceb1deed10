package assets

// Notes:
// - EmbeddedLoader: every shipped style must load and contain CSS.
// - FilesystemLoader: base path validation, traversal rejection, override.
// - StyleResolver: custom-first with fallback only on not-found.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoader_AllStyles(t *testing.T) {
	t.Parallel()
	loader := NewEmbeddedLoader()

	names := StyleNames()
	if len(names) == 0 {
		t.Fatal("no embedded styles")
	}
	for _, name := range names {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Errorf("LoadStyle(%q): %v", name, err)
			continue
		}
		if !strings.Contains(css, "body") {
			t.Errorf("style %q has no body rule", name)
		}
	}
}

func TestEmbeddedLoader_Default(t *testing.T) {
	t.Parallel()

	css, err := NewEmbeddedLoader().LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Error("default style missing chroma highlighting rules")
	}
}

func TestEmbeddedLoader_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewEmbeddedLoader().LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("err = %v, want ErrStyleNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		asset   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"hyphenated", "my-style", false},
		{"empty", "", true},
		{"dot", "style.css", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.asset)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) = %v, wantErr %v", tt.asset, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("err = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, "custom.css"), []byte("body { color: red }"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader: %v", err)
	}

	css, err := loader.LoadStyle("custom")
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if css != "body { color: red }" {
		t.Errorf("css = %q", css)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("err = %v, want ErrStyleNotFound", err)
	}
}

func TestNewFilesystemLoader_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"empty", func(t *testing.T) string { return "" }},
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent") }},
		{"file not dir", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "file")
			if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path(t))
			if !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("err = %v, want ErrInvalidBasePath", err)
			}
		})
	}
}

func TestStyleResolver_CustomWins(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		t.Fatal(err)
	}
	override := "body { background: black }"
	if err := os.WriteFile(filepath.Join(stylesDir, DefaultStyle+".css"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewStyleResolver(dir)
	if err != nil {
		t.Fatalf("NewStyleResolver: %v", err)
	}
	if !resolver.HasCustomLoader() {
		t.Error("HasCustomLoader() = false")
	}

	css, err := resolver.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if css != override {
		t.Error("custom style did not take precedence")
	}
}

func TestStyleResolver_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	resolver, err := NewStyleResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewStyleResolver: %v", err)
	}

	css, err := resolver.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Error("expected embedded default style")
	}
}

func TestStyleResolver_NoCustomPath(t *testing.T) {
	t.Parallel()

	resolver, err := NewStyleResolver("")
	if err != nil {
		t.Fatalf("NewStyleResolver: %v", err)
	}
	if resolver.HasCustomLoader() {
		t.Error("HasCustomLoader() = true for empty path")
	}
	if _, err := resolver.LoadStyle(DefaultStyle); err != nil {
		t.Errorf("LoadStyle: %v", err)
	}
}
