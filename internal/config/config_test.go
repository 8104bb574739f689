package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "human" {
		t.Errorf("Format = %q, want %q", cfg.Format, "human")
	}
	if cfg.Input != "" {
		t.Errorf("Input = %q, want stdin default", cfg.Input)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want stdout default", cfg.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "human" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "human")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file should return defaults, got error: %v", err)
	}
	if cfg.Format != "human" {
		t.Errorf("Format = %q, want default %q", cfg.Format, "human")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headline.json")
	content := `{
  "format": "json",
  "output": "titles.out",
  "logging": {"level": "debug", "format": "json"}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Output != "titles.out" {
		t.Errorf("Output = %q, want %q", cfg.Output, "titles.out")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load with an explicit missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"json format", func(c *Config) { c.Format = "json" }, false},
		{"bad format", func(c *Config) { c.Format = "yaml" }, true},
		{"bad logging format", func(c *Config) { c.Logging.Format = "pretty" }, true},
		{"bad logging level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
