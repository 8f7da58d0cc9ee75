package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	if cfg.Framework != "" {
		t.Errorf("expected empty default framework, got %q", cfg.Framework)
	}
	if cfg.Qt.Path != "" {
		t.Errorf("expected empty default qt path, got %q", cfg.Qt.Path)
	}
	if cfg.Qt.Verbose {
		t.Error("expected qt.verbose to default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `framework: vue
language: javascript
qt:
  path: /opt/Qt/6.8.0/gcc_64
  verbose: true
`
	if err := os.WriteFile(filepath.Join(dir, "qtweb.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Framework != "vue" {
		t.Errorf("expected framework vue, got %q", cfg.Framework)
	}
	if cfg.Language != "javascript" {
		t.Errorf("expected language javascript, got %q", cfg.Language)
	}
	if cfg.Qt.Path != "/opt/Qt/6.8.0/gcc_64" {
		t.Errorf("expected qt path, got %q", cfg.Qt.Path)
	}
	if !cfg.Qt.Verbose {
		t.Error("expected qt.verbose true")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "qtweb.yaml"), []byte(":: not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("expected error for malformed config file")
	}
}
