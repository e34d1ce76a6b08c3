package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset names a hazard density.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Title returns the preset name as shown in menus.
func (p DifficultyPreset) Title() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty resolves a case-insensitive preset name. An empty name
// selects the configured default.
func (c NuggetsConfig) ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return c.Difficulty.Default, nil
	}
	want := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range c.Difficulty.Presets {
		if p.Name == want {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (choose from %s)", ErrUnknownDifficulty, name, strings.Join(c.PresetNames(), ", "))
}

// HazardsFor returns the hazard count of a preset.
func (c NuggetsConfig) HazardsFor(preset DifficultyPreset) (int, error) {
	for _, p := range c.Difficulty.Presets {
		if p.Name == preset {
			return p.Hazards, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, preset)
}

// PresetNames returns the preset names in menu order.
func (c NuggetsConfig) PresetNames() []string {
	names := make([]string, len(c.Difficulty.Presets))
	for i, p := range c.Difficulty.Presets {
		names[i] = string(p.Name)
	}
	return names
}
