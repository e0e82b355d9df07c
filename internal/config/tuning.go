package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds all gameplay parameters. Defaults reproduce the stock
// game; a YAML file can override any of them.
type Tuning struct {
	World      WorldTuning      `yaml:"world"`
	Ship       ShipTuning       `yaml:"ship"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Spawn      SpawnTuning      `yaml:"spawn"`
	Split      SplitTuning      `yaml:"split"`
	Minimap    MinimapTuning    `yaml:"minimap"`
}

// WorldTuning defines the logical playfield dimensions, in world units.
type WorldTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipTuning defines player ship parameters.
type ShipTuning struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`           // world units per second
	FireCooldown    float64 `yaml:"fireCooldown"`    // seconds between shots
	Invulnerability float64 `yaml:"invulnerability"` // seconds after a hit
	Lives           int     `yaml:"lives"`
}

// ProjectileTuning defines projectile parameters.
type ProjectileTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // upward, world units per second
}

// SpawnTuning defines the meteoroid spawner and difficulty ramp.
// The spawn interval steps down by RampStep every RampEvery seconds of
// survival (never below MinInterval); the speed multiplier steps up by
// SpeedRampStep on the same schedule (never above MaxSpeedMultiplier).
type SpawnTuning struct {
	BaseInterval       float64 `yaml:"baseInterval"` // seconds between spawns at t=0
	MinInterval        float64 `yaml:"minInterval"`  // interval floor
	RampStep           float64 `yaml:"rampStep"`     // interval reduction per tier
	RampEvery          float64 `yaml:"rampEvery"`    // seconds per difficulty tier
	MinSpeed           float64 `yaml:"minSpeed"`     // fall speed range at multiplier 1
	MaxSpeed           float64 `yaml:"maxSpeed"`
	SpeedRampStep      float64 `yaml:"speedRampStep"`      // multiplier increase per tier
	MaxSpeedMultiplier float64 `yaml:"maxSpeedMultiplier"` // multiplier ceiling
	MaxDrift           float64 `yaml:"maxDrift"`           // max horizontal velocity either way
	MaxActive          int     `yaml:"maxActive"`          // meteoroid cap; spawns skipped at cap
	Overscan           float64 `yaml:"overscan"`           // extra spawn width beyond the right edge
}

// SplitTuning defines whether destroyed meteoroids break into smaller ones.
type SplitTuning struct {
	Enabled  bool `yaml:"enabled"`
	Children int  `yaml:"children"` // fragments per destruction
}

// MinimapTuning defines the look-ahead strip.
type MinimapTuning struct {
	LookaheadFactor float64 `yaml:"lookaheadFactor"` // span = world width × factor
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		World: WorldTuning{Width: 800, Height: 600},
		Ship: ShipTuning{
			Width:           60,
			Height:          40,
			Speed:           350,
			FireCooldown:    0.25,
			Invulnerability: 2.0,
			Lives:           3,
		},
		Projectile: ProjectileTuning{Width: 6, Height: 18, Speed: 500},
		Spawn: SpawnTuning{
			BaseInterval:       0.9,
			MinInterval:        0.35,
			RampStep:           0.02,
			RampEvery:          10,
			MinSpeed:           80,
			MaxSpeed:           220,
			SpeedRampStep:      0.05,
			MaxSpeedMultiplier: 2.5,
			MaxDrift:           60,
			MaxActive:          64,
			Overscan:           0,
		},
		Split:   SplitTuning{Enabled: true, Children: 2},
		Minimap: MinimapTuning{LookaheadFactor: 2.0},
	}
}

// LoadTuning reads a YAML tuning file, overlaying the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate reports nonsensical parameter combinations.
func (t Tuning) Validate() error {
	if t.World.Width <= 0 || t.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive")
	}
	if t.Ship.Width <= 0 || t.Ship.Width > t.World.Width {
		return fmt.Errorf("ship width %g out of range for world width %g", t.Ship.Width, t.World.Width)
	}
	if t.Ship.Lives < 1 {
		return fmt.Errorf("lives must be at least 1")
	}
	if t.Ship.FireCooldown < 0 || t.Ship.Invulnerability < 0 {
		return fmt.Errorf("ship timers must be non-negative")
	}
	if t.Spawn.MinInterval <= 0 || t.Spawn.BaseInterval < t.Spawn.MinInterval {
		return fmt.Errorf("spawn intervals must satisfy 0 < min <= base")
	}
	if t.Spawn.MinSpeed <= 0 || t.Spawn.MaxSpeed < t.Spawn.MinSpeed {
		return fmt.Errorf("spawn speeds must satisfy 0 < min <= max")
	}
	if t.Spawn.MaxSpeedMultiplier < 1 {
		return fmt.Errorf("max speed multiplier must be at least 1")
	}
	if t.Spawn.RampEvery <= 0 {
		return fmt.Errorf("rampEvery must be positive")
	}
	if t.Spawn.MaxActive < 1 {
		return fmt.Errorf("maxActive must be at least 1")
	}
	if t.Split.Enabled && t.Split.Children < 1 {
		return fmt.Errorf("split children must be at least 1 when splitting is enabled")
	}
	if t.Minimap.LookaheadFactor < 1 {
		return fmt.Errorf("minimap lookahead factor must be at least 1")
	}
	return nil
}
