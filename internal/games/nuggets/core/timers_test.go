package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}

	for _, tc := range tests {
		if got := core.EaseOutCubic(tc.in); got != tc.expected {
			t.Errorf("EaseOutCubic(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestPhaseProgress(t *testing.T) {
	rec := &core.HazardRecovery{Countdown: 75, Duration: 75}
	assert.Equal(t, 0.0, rec.Progress())
	rec.Countdown = 25
	assert.InDelta(t, 2.0/3.0, rec.Progress(), 1e-9)
	rec.Countdown = 0
	assert.Equal(t, 1.0, rec.Progress())

	assert.Equal(t, 1.0, (&core.HazardRecovery{}).Progress(), "zero duration counts as finished")
}

func TestItemFoundFlyProgress(t *testing.T) {
	f := &core.ItemFound{Countdown: 120, Duration: 120}
	assert.Equal(t, 0, f.Elapsed())
	assert.Equal(t, 0.0, f.FlyProgress(55))

	f.Countdown = 120 - 11
	assert.InDelta(t, 0.2, f.FlyProgress(55), 1e-9)

	f.Countdown = 10
	assert.Equal(t, 1.0, f.FlyProgress(55))
	assert.InDelta(t, 110.0/120.0, f.Progress(), 1e-9)
	assert.Equal(t, 1.0, f.FlyProgress(0))
}

func TestPhaseKinds(t *testing.T) {
	phases := map[core.PhaseKind]core.Phase{
		core.KindPlaying:        core.Playing{},
		core.KindHazardRecovery: &core.HazardRecovery{},
		core.KindItemFound:      &core.ItemFound{},
		core.KindWon:            &core.Won{},
	}

	for kind, p := range phases {
		assert.Equal(t, kind, p.Kind())
	}
}
