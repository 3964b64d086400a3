package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Physics.PlayerWidth != 30.0 {
		t.Fatalf("player width = %v, want 30.0", cfg.Physics.PlayerWidth)
	}
	if cfg.Search.HeuristicWeight != 1.8 {
		t.Fatalf("heuristic weight = %v, want 1.8", cfg.Search.HeuristicWeight)
	}
	if cfg.Derived.PlayerWidth32 != 30.0 {
		t.Fatalf("derived player width = %v, want 30.0", cfg.Derived.PlayerWidth32)
	}
}

func TestLoadMergesOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/override.yaml"
	override := []byte("search:\n  heuristic_weight: 2.5\n")
	if err := os.WriteFile(path, override, 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.HeuristicWeight != 2.5 {
		t.Fatalf("heuristic weight = %v, want 2.5 (overridden)", cfg.Search.HeuristicWeight)
	}
	// Fields not present in the override retain the embedded default.
	if cfg.Physics.PlayerWidth != 30.0 {
		t.Fatalf("player width = %v, want untouched default 30.0", cfg.Physics.PlayerWidth)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	defer func() {
		if recover() == nil {
			t.Fatal("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}

func TestMustInitThenCfg(t *testing.T) {
	MustInit("")
	if Cfg() == nil {
		t.Fatal("expected non-nil config after MustInit")
	}
}

func TestPhysicsTablesHaveFiveSpeedEntries(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Len(t, cfg.Physics.Gravities, 5)
	require.Len(t, cfg.Physics.JumpVelocities, 5)
	require.Len(t, cfg.Physics.PlayerSpeeds, 5)
	require.Len(t, cfg.Physics.ShipVelocities, 5)

	for i, speed := range cfg.Physics.PlayerSpeeds {
		require.Greaterf(t, speed, 0.0, "player speed at index %d must be positive", i)
	}
}
