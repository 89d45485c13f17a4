package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BackupSuffix != ".backup" {
		t.Fatalf("BackupSuffix = %q", cfg.BackupSuffix)
	}
	if cfg.MatchBy != "hash" {
		t.Fatalf("MatchBy = %q", cfg.MatchBy)
	}
	if !cfg.Recursive {
		t.Fatal("Recursive should default to true")
	}
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "backup_suffix: .orig\nmatch_by: filename\nrecursive: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackupSuffix != ".orig" || cfg.MatchBy != "filename" || cfg.Recursive {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PPTXSWAP_MATCH_BY", "size")
	t.Setenv("PPTXSWAP_RECURSIVE", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MatchBy != "size" {
		t.Fatalf("MatchBy = %q, want size", cfg.MatchBy)
	}
	if cfg.Recursive {
		t.Fatal("Recursive should be overridden to false")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("recursive: [not a bool"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
