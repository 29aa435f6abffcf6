package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".aiact.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatasetPath != "data/eu_ai_act_articles_complete.json" {
		t.Errorf("dataset_path = %q", cfg.DatasetPath)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DataDir != ".aiact" || cfg.OutputDir != "export" {
		t.Errorf("dirs = %q %q", cfg.DataDir, cfg.OutputDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aiact.yml")
	content := []byte("dataset_path: custom/articles.json\nport: 9000\nauthor: 山田\ncors_allow_all: true\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatasetPath != "custom/articles.json" {
		t.Errorf("dataset_path = %q", cfg.DatasetPath)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Author != "山田" {
		t.Errorf("author = %q", cfg.Author)
	}
	if !cfg.CORSAllowAll {
		t.Error("cors_allow_all not set")
	}
	if cfg.OutputDir != "export" {
		t.Errorf("output_dir = %q, default not preserved", cfg.OutputDir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aiact.yml")
	if err := os.WriteFile(path, []byte("author: 山田\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("AIACT_AUTHOR", "佐藤")
	t.Setenv("AIACT_DATASET_PATH", "env/articles.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Author != "佐藤" {
		t.Errorf("author = %q, env override not applied", cfg.Author)
	}
	if cfg.DatasetPath != "env/articles.json" {
		t.Errorf("dataset_path = %q", cfg.DatasetPath)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aiact.yml")

	cfg := DefaultConfig()
	cfg.Author = "編集者"
	cfg.Port = 9090
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Author != "編集者" || loaded.Port != 9090 {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.DatasetPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing dataset_path accepted")
	}

	cfg = DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 accepted")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("port 70000 accepted")
	}
}
