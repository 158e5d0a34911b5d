package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
	if cfg.Server.Address != "localhost:8090" {
		t.Errorf("unexpected default address: %s", cfg.Server.Address)
	}
	if time.Duration(cfg.Request.Timeout) != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Request.Timeout)
	}
	if len(cfg.Translate.LibreTranslate.Endpoints) != 2 {
		t.Errorf("expected 2 default libretranslate endpoints, got %d", len(cfg.Translate.LibreTranslate.Endpoints))
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	partial := []byte("server:\n  address: \"0.0.0.0:9000\"\nrequest:\n  timeout: 5s\n")
	if err := os.WriteFile(path, partial, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Address != "0.0.0.0:9000" {
		t.Errorf("file value not applied: %s", cfg.Server.Address)
	}
	if time.Duration(cfg.Request.Timeout) != 5*time.Second {
		t.Errorf("timeout not parsed: %v", cfg.Request.Timeout)
	}
	// Untouched fields keep defaults.
	if cfg.Translate.MyMemory.BaseURL == "" {
		t.Error("default mymemory base_url lost during merge")
	}
	if cfg.Request.MaxRedirects != 3 {
		t.Errorf("default max_redirects lost during merge: %d", cfg.Request.MaxRedirects)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"2h45m", 2*time.Hour + 45*time.Minute},
		{"1d", Day},
		{"1w", Week},
		{"1d2h", Day + 2*time.Hour},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGenerateDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := GenerateDefault(path); err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	if err := GenerateDefault(path); err == nil {
		t.Error("expected error when config already exists")
	}
}
