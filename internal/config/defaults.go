package config

import (
	_ "embed"
)

//go:embed defaults/nuggets.yaml
var defaultNuggetsYAML []byte

// DefaultNuggetsConfig returns the built-in configuration.
func DefaultNuggetsConfig() NuggetsConfig {
	return NuggetsConfig{
		Grid: GridConfig{
			Cols:  15,
			Rows:  15,
			Start: [2]int{7, 7},
		},
		Items: ItemsConfig{
			Count: 5,
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyEasy,
			Presets: []PresetConfig{
				{Name: DifficultyEasy, Hazards: 15},
				{Name: DifficultyMedium, Hazards: 20},
				{Name: DifficultyHard, Hazards: 25},
			},
		},
		Timers: TimersConfig{
			HazardRecovery: 75,
			ItemFound:      120,
			ItemFly:        55,
		},
		Victory: VictoryConfig{
			AngleStep:       0.03,
			InitialBurst:    40,
			RespawnBatch:    8,
			RespawnInterval: 30,
			MaxParticles:    240,
			Gravity:         0.0015,
			MinSpeed:        0.025,
			MaxSpeed:        0.1125,
			MinDecay:        0.008,
			MaxDecay:        0.022,
		},
	}
}
