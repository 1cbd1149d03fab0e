package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if cfg.CycleBudget != want.CycleBudget || cfg.ProgramPath != want.ProgramPath || cfg.EnableExtensions != want.EnableExtensions {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "cycle_budget = 500\nprogram_path = \"programs/demo.hex\"\nenable_extensions = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CycleBudget != 500 {
		t.Fatalf("CycleBudget = %d, want 500", cfg.CycleBudget)
	}
	if cfg.ProgramPath != "programs/demo.hex" {
		t.Fatalf("ProgramPath = %q, want %q", cfg.ProgramPath, "programs/demo.hex")
	}
	if cfg.EnableExtensions {
		t.Fatal("EnableExtensions = true, want false")
	}
}
