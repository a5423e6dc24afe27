package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RevisitCap != 2 {
		t.Errorf("expected revisit_cap 2, got %d", cfg.RevisitCap)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("expected output_format json, got %q", cfg.OutputFormat)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/tsg-config.yaml")
	if err != nil {
		t.Fatalf("Load should return defaults for non-existent file, got error: %v", err)
	}
	if cfg.RevisitCap != 2 {
		t.Errorf("expected default revisit_cap 2, got %d", cfg.RevisitCap)
	}
}

func TestLoadValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
revisit_cap: 4
output_format: dot
quiet: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RevisitCap != 4 {
		t.Errorf("expected revisit_cap 4, got %d", cfg.RevisitCap)
	}
	if cfg.OutputFormat != "dot" {
		t.Errorf("expected output_format dot, got %q", cfg.OutputFormat)
	}
	if !cfg.Quiet {
		t.Error("expected quiet to be true")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("invalid: yaml: [broken"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadRejectsNegativeRevisitCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("revisit_cap: -1\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative revisit_cap, got nil")
	}
}
