package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.Search.DefaultLimit)
	}
	if cfg.Snippet.Width != 150 || cfg.Snippet.Context != 75 {
		t.Errorf("Snippet = %+v, want 150/75", cfg.Snippet)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should default to disabled")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.Search.DefaultLimit)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
search:
  defaultLimit: 5
snippet:
  width: 80
cache:
  enabled: false
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.DefaultLimit != 5 {
		t.Errorf("DefaultLimit = %d, want 5", cfg.Search.DefaultLimit)
	}
	if cfg.Snippet.Width != 80 {
		t.Errorf("Width = %d, want 80", cfg.Snippet.Width)
	}
	if cfg.Snippet.Context != 75 {
		t.Errorf("Context = %d, want default 75", cfg.Snippet.Context)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled by file")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("search: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MS_SEARCH_DEFAULT_LIMIT", "3")
	t.Setenv("MS_CACHE_ENABLED", "false")
	t.Setenv("MS_CORPUS_PATH", "/tmp/corpus.txt")
	t.Setenv("MS_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.DefaultLimit != 3 {
		t.Errorf("DefaultLimit = %d, want 3", cfg.Search.DefaultLimit)
	}
	if cfg.Cache.Enabled {
		t.Error("MS_CACHE_ENABLED=false not applied")
	}
	if cfg.Corpus.Path != "/tmp/corpus.txt" {
		t.Errorf("Corpus.Path = %q", cfg.Corpus.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}
