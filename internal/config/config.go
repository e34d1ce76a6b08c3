// Package config provides YAML-based configuration loading and difficulty
// presets for Nugget Hunt.
package config

import (
	"github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

// NuggetsConfig is the full game configuration document.
type NuggetsConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Items      ItemsConfig      `yaml:"items"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timers     TimersConfig     `yaml:"timers"`
	Victory    VictoryConfig    `yaml:"victory"`
}

// GridConfig defines the board.
type GridConfig struct {
	Cols  int    `yaml:"cols"`
	Rows  int    `yaml:"rows"`
	Start [2]int `yaml:"start"` // [col, row]
}

// ItemsConfig defines the collectible pieces.
type ItemsConfig struct {
	Count int `yaml:"count"`
}

// DifficultyConfig lists the selectable presets in menu order.
type DifficultyConfig struct {
	Default DifficultyPreset `yaml:"default"`
	Presets []PresetConfig   `yaml:"presets"`
}

// PresetConfig maps a preset name to a hazard count.
type PresetConfig struct {
	Name    DifficultyPreset `yaml:"name"`
	Hazards int              `yaml:"hazards"`
}

// TimersConfig holds phase durations in ticks.
type TimersConfig struct {
	HazardRecovery int `yaml:"hazard_recovery"`
	ItemFound      int `yaml:"item_found"`
	ItemFly        int `yaml:"item_fly"` // leading part of item_found spent flying to the HUD
}

// VictoryConfig shapes the victory animation. Distances are in grid cells.
type VictoryConfig struct {
	AngleStep       float64 `yaml:"angle_step"`
	InitialBurst    int     `yaml:"initial_burst"`
	RespawnBatch    int     `yaml:"respawn_batch"`
	RespawnInterval int     `yaml:"respawn_interval"`
	MaxParticles    int     `yaml:"max_particles"`
	Gravity         float64 `yaml:"gravity"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	MinDecay        float64 `yaml:"min_decay"`
	MaxDecay        float64 `yaml:"max_decay"`
}

// Params converts the document into the game core's parameters.
func (c NuggetsConfig) Params() core.Params {
	return core.Params{
		Grid: core.Grid{
			Cols:  c.Grid.Cols,
			Rows:  c.Grid.Rows,
			Start: core.C(c.Grid.Start[0], c.Grid.Start[1]),
		},
		ItemCount:      c.Items.Count,
		HazardRecovery: c.Timers.HazardRecovery,
		ItemFound:      c.Timers.ItemFound,
		Victory: core.VictoryParams{
			AngleStep:       c.Victory.AngleStep,
			InitialBurst:    c.Victory.InitialBurst,
			RespawnBatch:    c.Victory.RespawnBatch,
			RespawnInterval: c.Victory.RespawnInterval,
			MaxParticles:    c.Victory.MaxParticles,
			Gravity:         c.Victory.Gravity,
			MinSpeed:        c.Victory.MinSpeed,
			MaxSpeed:        c.Victory.MaxSpeed,
			MinDecay:        c.Victory.MinDecay,
			MaxDecay:        c.Victory.MaxDecay,
		},
	}
}
