package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadFrom() = %+v, want defaults %+v", cfg, Default())
		}
	})

	t.Run("reads settings", func(t *testing.T) {
		t.Parallel()
		path := write(t, "strict = true\nsearch_depth = 3\ndefault_type = \"bugfix\"\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if !cfg.Strict {
			t.Error("Strict = false, want true")
		}
		if cfg.SearchDepth != 3 {
			t.Errorf("SearchDepth = %d, want 3", cfg.SearchDepth)
		}
		if cfg.DefaultType != "bugfix" {
			t.Errorf("DefaultType = %q, want %q", cfg.DefaultType, "bugfix")
		}
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		t.Parallel()
		path := write(t, "strict = true\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.SearchDepth != Default().SearchDepth {
			t.Errorf("SearchDepth = %d, want default %d", cfg.SearchDepth, Default().SearchDepth)
		}
		if cfg.DefaultType != Default().DefaultType {
			t.Errorf("DefaultType = %q, want default %q", cfg.DefaultType, Default().DefaultType)
		}
	})

	t.Run("malformed toml is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "strict = [broken\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() = nil error, want failure")
		}
	})

	t.Run("invalid default_type is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "default_type = \"hotfix\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() = nil error, want failure")
		}
	})

	t.Run("invalid search_depth is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "search_depth = 0\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() = nil error, want failure")
		}
	})
}
