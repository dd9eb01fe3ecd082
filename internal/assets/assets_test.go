package assets_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcoffin/pagegen/internal/assets"
)

// ---------------------------------------------------------------------------
// TestValidateLayoutName
// ---------------------------------------------------------------------------

func TestValidateLayoutName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "default", false},
		{"hyphenated name", "blog-post", false},
		{"underscored name", "blog_post", false},
		{"empty name", "", true},
		{"path separator", "dir/layout", true},
		{"backslash", "dir\\layout", true},
		{"dot traversal", "..", true},
		{"extension smuggling", "layout.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := assets.ValidateLayoutName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, assets.ErrInvalidLayoutName) {
					t.Fatalf("error = %v, want ErrInvalidLayoutName", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("default layout exists and has a content slot", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadLayout(assets.DefaultLayoutName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(content, "{{ content }}") {
			t.Errorf("default layout missing content slot:\n%s", content)
		}
	})

	t.Run("unknown layout fails", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadLayout("nope")
		if !errors.Is(err, assets.ErrLayoutNotFound) {
			t.Fatalf("error = %v, want ErrLayoutNotFound", err)
		}
	})

	t.Run("invalid name is rejected before lookup", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadLayout("../default")
		if !errors.Is(err, assets.ErrInvalidLayoutName) {
			t.Fatalf("error = %v, want ErrInvalidLayoutName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader
// ---------------------------------------------------------------------------

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads layout from directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeLayout(t, dir, "post", "<article>{{ content }}</article>")

		loader, err := assets.NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := loader.LoadLayout("post")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "<article>{{ content }}</article>" {
			t.Errorf("LoadLayout = %q", content)
		}
	})

	t.Run("missing layout fails", func(t *testing.T) {
		t.Parallel()

		loader, err := assets.NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = loader.LoadLayout("missing")
		if !errors.Is(err, assets.ErrLayoutNotFound) {
			t.Fatalf("error = %v, want ErrLayoutNotFound", err)
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		_, err := assets.NewFilesystemLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Fatalf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("empty path fails", func(t *testing.T) {
		t.Parallel()

		_, err := assets.NewFilesystemLoader("")
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Fatalf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := assets.NewFilesystemLoader(path)
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Fatalf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("traversal names are rejected", func(t *testing.T) {
		t.Parallel()

		loader, err := assets.NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = loader.LoadLayout("../secrets")
		if !errors.Is(err, assets.ErrInvalidLayoutName) {
			t.Fatalf("error = %v, want ErrInvalidLayoutName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLayoutResolver - Custom-first with embedded fallback
// ---------------------------------------------------------------------------

func TestLayoutResolver(t *testing.T) {
	t.Parallel()

	t.Run("no custom path uses embedded", func(t *testing.T) {
		t.Parallel()

		resolver, err := assets.NewLayoutResolver("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("HasCustomLoader = true, want false")
		}

		if _, err := resolver.LoadLayout(assets.DefaultLayoutName); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("custom layout takes precedence", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeLayout(t, dir, assets.DefaultLayoutName, "<custom>{{ content }}</custom>")

		resolver, err := assets.NewLayoutResolver(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := resolver.LoadLayout(assets.DefaultLayoutName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "<custom>{{ content }}</custom>" {
			t.Errorf("LoadLayout = %q, want custom layout", content)
		}
	})

	t.Run("falls back to embedded when custom is missing", func(t *testing.T) {
		t.Parallel()

		resolver, err := assets.NewLayoutResolver(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := resolver.LoadLayout(assets.DefaultLayoutName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(content, "{{ content }}") {
			t.Errorf("embedded fallback missing content slot:\n%s", content)
		}
	})

	t.Run("absent everywhere fails", func(t *testing.T) {
		t.Parallel()

		resolver, err := assets.NewLayoutResolver(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = resolver.LoadLayout("nope")
		if !errors.Is(err, assets.ErrLayoutNotFound) {
			t.Fatalf("error = %v, want ErrLayoutNotFound", err)
		}
	})

	t.Run("invalid custom path fails construction", func(t *testing.T) {
		t.Parallel()

		_, err := assets.NewLayoutResolver(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Fatalf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// writeLayout writes {dir}/{name}.html for filesystem loader tests.
func writeLayout(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name+".html")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing layout fixture: %v", err)
	}
}
