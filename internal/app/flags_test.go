package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"wildgrid/internal/sims/ecosystem"
)

func parseFlags(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("ecosim", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestWorldConfigDefaults(t *testing.T) {
	cfg, err := parseFlags(t).WorldConfig()
	if err != nil {
		t.Fatalf("WorldConfig: %v", err)
	}
	if cfg != ecosystem.DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestWorldConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("width: 40\nheight: 20\nseed: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := parseFlags(t, "-config", path, "-h", "12").WorldConfig()
	if err != nil {
		t.Fatalf("WorldConfig: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 12 || cfg.Seed != 5 {
		t.Fatalf("cfg = %+v, want 40x12 seed 5", cfg)
	}
}

func TestWorldConfigRejectsInvalid(t *testing.T) {
	_, err := parseFlags(t, "-w", "-3").WorldConfig()
	if !errors.Is(err, ecosystem.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}
