package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pavanmanishd/vector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workload != "push" {
		t.Errorf("expected workload push, got %s", cfg.Workload)
	}
	if cfg.Ops <= 0 {
		t.Error("ops should be positive")
	}
	if cfg.Growth.Factor != vector.DefaultGrowthFactor {
		t.Errorf("expected factor %d, got %d", vector.DefaultGrowthFactor, cfg.Growth.Factor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectrace.yaml")

	cfg := DefaultConfig()
	cfg.Workload = "insert-n"
	cfg.Batch = 3
	cfg.Growth = GrowthConfig{Factor: 2, InitialCapacity: 1, Limit: 500}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("workload: resize\ngrowth:\n  factor: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Workload != "resize" || cfg.Growth.Factor != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Ops != DefaultOps || cfg.Plot.Height != DefaultPlotHeight {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("batch: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error for zero batch")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero ops", func(c *Config) { c.Ops = 0 }, true},
		{"negative ops", func(c *Config) { c.Ops = -1 }, false},
		{"zero batch", func(c *Config) { c.Batch = 0 }, false},
		{"unset factor", func(c *Config) { c.Growth.Factor = 0 }, true},
		{"factor one", func(c *Config) { c.Growth.Factor = 1 }, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Growth = GrowthConfig{Factor: 3, InitialCapacity: 2, Limit: 40}

	p := vector.New[int](cfg.Options()...).Policy()
	want := vector.GrowthPolicy{Factor: 3, InitialCapacity: 2, Limit: 40}
	if p != want {
		t.Errorf("expected policy %+v, got %+v", want, p)
	}
}
