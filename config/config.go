// Package config provides configuration loading and access for the bot:
// physics constants, search tuning, and runtime defaults, loaded from an
// embedded YAML baseline and optionally overridden by a user file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable used by the simulator and search session.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Search  SearchConfig  `yaml:"search"`
	Run     RunConfig     `yaml:"run"`

	Derived DerivedConfig `yaml:"-"`
}

// PhysicsConfig mirrors the per-speed-portal tables and fixed-step
// constants the simulator uses. Index 0 is the 0.5x speed portal, through
// index 4 for 4x.
type PhysicsConfig struct {
	Gravities       [5]float64 `yaml:"gravities"`
	JumpVelocities  [5]float64 `yaml:"jump_velocities"`
	PlayerSpeeds    [5]float64 `yaml:"player_speeds"`
	ShipVelocities  [5]float64 `yaml:"ship_velocities"`
	PlayerWidth     float64    `yaml:"player_width"`
	PlayerHeight    float64    `yaml:"player_height"`
	ShipBounds      float64    `yaml:"ship_bounds"`
	DT              float64    `yaml:"dt"`
	VerticalDTScale float64    `yaml:"vertical_dt_scale"`
	VyQuantizeStep  float64    `yaml:"vy_quantize_step"`
}

// SearchConfig tunes the A* session: quantization cell sizes for the state
// key, the heuristic weight, and the stagnation detector.
type SearchConfig struct {
	HeuristicWeight         float64 `yaml:"heuristic_weight"`
	XQuant                  float64 `yaml:"x_quant"`
	YQuant                  float64 `yaml:"y_quant"`
	VyQuant                 float64 `yaml:"vy_quant"`
	StagnationCheckInterval int     `yaml:"stagnation_check_interval"`
	MinProgressPerInterval  float64 `yaml:"min_progress_per_interval"`
}

// RunConfig holds CLI-facing defaults not tied to the physics/search model.
type RunConfig struct {
	ProgressBarWidth  int `yaml:"progress_bar_width"`
	ProgressBarUpdate int `yaml:"progress_bar_update_every"`
}

// DerivedConfig holds values computed once after loading, so callers on a
// hot path never repeat the conversion.
type DerivedConfig struct {
	DT32             float32
	VerticalDTScale32 float32
	PlayerWidth32    float32
	PlayerHeight32   float32
	ShipBounds32     float32
}

var global *Config

// Init loads configuration from path, or embedded defaults alone if path
// is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error, for use during CLI startup.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load parses embedded defaults and, if path is non-empty, merges a user
// override file on top of them.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.VerticalDTScale32 = float32(c.Physics.VerticalDTScale)
	c.Derived.PlayerWidth32 = float32(c.Physics.PlayerWidth)
	c.Derived.PlayerHeight32 = float32(c.Physics.PlayerHeight)
	c.Derived.ShipBounds32 = float32(c.Physics.ShipBounds)
}
