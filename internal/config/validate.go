package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrGridTooSmall means the board cannot hold the pieces besides the start cell.
	ErrGridTooSmall = errors.New("config: grid too small for item count")
	// ErrUnknownDifficulty is returned for preset names not in the configuration.
	ErrUnknownDifficulty = errors.New("config: unknown difficulty")
)

// Validate checks the configuration before any game is started. Every
// failure wraps ErrInvalidConfig.
func (c NuggetsConfig) Validate() error {
	g := c.Grid
	if g.Cols <= 0 || g.Rows <= 0 {
		return invalid("grid must be at least 1x1, got %dx%d", g.Cols, g.Rows)
	}
	if g.Start[0] < 0 || g.Start[0] >= g.Cols || g.Start[1] < 0 || g.Start[1] >= g.Rows {
		return invalid("start %v outside %dx%d grid", g.Start, g.Cols, g.Rows)
	}
	if c.Items.Count <= 0 {
		return invalid("items.count must be positive, got %d", c.Items.Count)
	}
	if free := g.Cols*g.Rows - 1; free < c.Items.Count {
		return fmt.Errorf("%w: %w: %d free cells, %d items", ErrInvalidConfig, ErrGridTooSmall, free, c.Items.Count)
	}

	if len(c.Difficulty.Presets) == 0 {
		return invalid("difficulty.presets is empty")
	}
	seen := make(map[DifficultyPreset]bool, len(c.Difficulty.Presets))
	for _, p := range c.Difficulty.Presets {
		if p.Name == "" {
			return invalid("difficulty preset without a name")
		}
		if seen[p.Name] {
			return invalid("duplicate difficulty preset %q", p.Name)
		}
		seen[p.Name] = true
		if p.Hazards < 0 {
			return invalid("preset %q has negative hazards %d", p.Name, p.Hazards)
		}
	}
	if !seen[c.Difficulty.Default] {
		return invalid("default difficulty %q is not a preset", c.Difficulty.Default)
	}

	t := c.Timers
	if t.HazardRecovery <= 0 || t.ItemFound <= 0 {
		return invalid("timers must be positive, got hazard_recovery=%d item_found=%d", t.HazardRecovery, t.ItemFound)
	}
	if t.ItemFly < 0 || t.ItemFly > t.ItemFound {
		return invalid("timers.item_fly must be within [0, item_found], got %d", t.ItemFly)
	}

	v := c.Victory
	if v.InitialBurst < 0 || v.RespawnBatch < 0 || v.MaxParticles < 0 {
		return invalid("victory particle counts must not be negative")
	}
	if v.RespawnInterval <= 0 {
		return invalid("victory.respawn_interval must be positive, got %d", v.RespawnInterval)
	}
	if v.MinSpeed < 0 || v.MaxSpeed < v.MinSpeed {
		return invalid("victory speed range [%g, %g] is invalid", v.MinSpeed, v.MaxSpeed)
	}
	if v.MinDecay <= 0 || v.MaxDecay < v.MinDecay {
		return invalid("victory decay range [%g, %g] is invalid", v.MinDecay, v.MaxDecay)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
