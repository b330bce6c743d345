package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBenchConfig(t *testing.T) {
	src := `
cache-sizes = [8, 32]
seed = 7

[[case]]
kind = "grid"
width = 4
height = 4
shuffle = true

[[case]]
kind = "fan"
count = 12
`
	path := filepath.Join(t.TempDir(), "suite.toml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadBenchConfig(path)
	if err != nil {
		t.Fatalf("loadBenchConfig: %v", err)
	}

	if len(cfg.CacheSizes) != 2 || cfg.CacheSizes[0] != 8 || cfg.CacheSizes[1] != 32 {
		t.Errorf("cache sizes = %v, want [8 32]", cfg.CacheSizes)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if len(cfg.Cases) != 2 {
		t.Fatalf("cases = %d, want 2", len(cfg.Cases))
	}
	if cfg.Cases[0].Kind != "grid" || !cfg.Cases[0].Shuffle {
		t.Errorf("first case = %+v", cfg.Cases[0])
	}
	if cfg.Cases[1].Kind != "fan" || cfg.Cases[1].Count != 12 {
		t.Errorf("second case = %+v", cfg.Cases[1])
	}
}

func TestLoadBenchConfig_NoCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	if err := os.WriteFile(path, []byte(`cache-sizes = [32]`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadBenchConfig(path); err == nil {
		t.Error("expected error for a suite without cases")
	}
}

func TestBuildBenchMesh(t *testing.T) {
	m, err := buildBenchMesh(benchCase{Kind: "strip", Count: 4}, 1)
	if err != nil {
		t.Fatalf("buildBenchMesh: %v", err)
	}
	if m.TriangleCount() != 4 {
		t.Errorf("triangle count = %d, want 4", m.TriangleCount())
	}

	if _, err := buildBenchMesh(benchCase{Kind: "teapot"}, 1); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestDefaultBenchConfig(t *testing.T) {
	cfg := defaultBenchConfig()
	if len(cfg.Cases) == 0 {
		t.Fatal("default suite has no cases")
	}
	for _, bc := range cfg.Cases {
		if _, err := buildBenchMesh(bc, cfg.Seed); err != nil {
			t.Errorf("default case %+v: %v", bc, err)
		}
	}
}
