package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedState builds a playthrough on a hand-placed map.
func fixedState(p Params, items []Coord, hazards ...Coord) *State {
	s := NewGame(p, len(hazards), rand.New(rand.NewSource(1)))
	s.items = append([]Coord(nil), items...)
	s.hazards = NewCellSet(hazards...)
	return s
}

var columnItems = []Coord{C(7, 6), C(7, 5), C(7, 4), C(7, 3), C(7, 2)}

func tickUntilPlaying(t *testing.T, s *State) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if s.phase.Kind() == KindPlaying {
			return
		}
		s.Tick()
	}
	t.Fatalf("phase %s never returned to playing", s.phase.Kind())
}

func TestMoveIntoHazardFarFromStart(t *testing.T) {
	items := []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0), C(4, 0)}
	s := fixedState(DefaultParams(), items, C(7, 3))

	for i := 0; i < 3; i++ {
		require.Equal(t, MoveStepped, s.Move(DirUp))
	}
	require.Equal(t, C(7, 4), s.Player())

	outcome := s.Move(DirUp)

	assert.Equal(t, MoveHazard, outcome)
	assert.Equal(t, 1, s.Deaths())
	assert.Equal(t, C(7, 7), s.Player())
	assert.True(t, s.IsRevealed(C(7, 3)))
	assert.True(t, s.IsVisited(C(7, 3)))
	rec, ok := s.Phase().(*HazardRecovery)
	require.True(t, ok, "phase = %s, expected hazard_recovery", s.Phase().Kind())
	assert.Equal(t, 75, rec.Countdown)
	assert.Equal(t, 75, rec.Duration)
}

func TestHazardRecoveryIgnoresInputAndEndsAtZero(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems, C(8, 7))
	require.Equal(t, MoveHazard, s.Move(DirRight))

	assert.Equal(t, MoveIgnored, s.Move(DirLeft))
	assert.Equal(t, DirRight, s.Facing(), "facing must not change while recovering")

	for i := 0; i < 74; i++ {
		s.Tick()
	}
	rec, ok := s.Phase().(*HazardRecovery)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Countdown)

	s.Tick()
	assert.Equal(t, KindPlaying, s.Phase().Kind())
}

func TestRevealedHazardStillTriggers(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems, C(8, 7))

	require.Equal(t, MoveHazard, s.Move(DirRight))
	tickUntilPlaying(t, s)
	require.Equal(t, MoveHazard, s.Move(DirRight))

	assert.Equal(t, 2, s.Deaths())
	assert.Equal(t, 1, s.Revealed().Len())
}

func TestItemFoundPhase(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)

	outcome := s.Move(DirUp)

	assert.Equal(t, MoveItem, outcome)
	found, ok := s.Phase().(*ItemFound)
	require.True(t, ok)
	assert.Equal(t, 120, found.Countdown)
	assert.Equal(t, C(7, 6), found.Origin)
	assert.Equal(t, 0, found.Slot)
	assert.True(t, s.IsCollected(C(7, 6)))

	for i := 0; i < 120; i++ {
		s.Tick()
	}
	assert.Equal(t, KindPlaying, s.Phase().Kind())
}

func TestSlotFollowsCollectionOrder(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)

	require.Equal(t, MoveItem, s.Move(DirUp))
	tickUntilPlaying(t, s)
	require.Equal(t, MoveItem, s.Move(DirUp))

	found, ok := s.Phase().(*ItemFound)
	require.True(t, ok)
	assert.Equal(t, 1, found.Slot)
	assert.Equal(t, C(7, 5), found.Origin)
}

func TestCollectedItemIsPlainFloor(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)

	require.Equal(t, MoveItem, s.Move(DirUp))
	tickUntilPlaying(t, s)
	require.Equal(t, MoveStepped, s.Move(DirDown))
	assert.Equal(t, MoveStepped, s.Move(DirUp))
	assert.Equal(t, KindPlaying, s.Phase().Kind())
	assert.Equal(t, 1, s.Collected().Len())
}

func TestLastItemGoesStraightToWon(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)

	for i := 0; i < 4; i++ {
		require.Equal(t, MoveItem, s.Move(DirUp))
		tickUntilPlaying(t, s)
	}
	outcome := s.Move(DirUp)

	assert.Equal(t, MoveWon, outcome)
	assert.True(t, s.Won())
	won, ok := s.Phase().(*Won)
	require.True(t, ok, "phase = %s, expected won", s.Phase().Kind())
	assert.Equal(t, 0.0, won.Angle)
	assert.Equal(t, 0, won.RespawnCountdown)
	assert.Len(t, won.Particles, 40)
	for _, p := range won.Particles {
		assert.Equal(t, 7.5, p.X)
		assert.Equal(t, 2.5, p.Y)
		assert.Equal(t, 1.0, p.Life)
	}

	assert.Equal(t, MoveIgnored, s.Move(DirDown))
}

func TestWonTickAnimates(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)
	for i := 0; i < 4; i++ {
		s.Move(DirUp)
		tickUntilPlaying(t, s)
	}
	require.Equal(t, MoveWon, s.Move(DirUp))

	s.Tick()

	won := s.Phase().(*Won)
	assert.InDelta(t, 0.03, won.Angle, 1e-9)
	assert.Len(t, won.Particles, 48, "initial burst plus one respawn batch")
	assert.Equal(t, 30, won.RespawnCountdown)

	for i := 0; i < 29; i++ {
		s.Tick()
	}
	won = s.Phase().(*Won)
	assert.Equal(t, 1, won.RespawnCountdown)

	s.Tick()
	won = s.Phase().(*Won)
	assert.Equal(t, 30, won.RespawnCountdown, "next batch spawned on schedule")
	assert.InDelta(t, 0.93, won.Angle, 1e-9)
}

func TestParticlesExpireAndStayCapped(t *testing.T) {
	p := DefaultParams()
	p.Victory.MaxParticles = 50
	s := fixedState(p, columnItems)
	for i := 0; i < 4; i++ {
		s.Move(DirUp)
		tickUntilPlaying(t, s)
	}
	require.Equal(t, MoveWon, s.Move(DirUp))

	for i := 0; i < 2000; i++ {
		s.Tick()
		won := s.Phase().(*Won)
		require.LessOrEqual(t, len(won.Particles), 50)
		for _, pt := range won.Particles {
			require.Greater(t, pt.Life, 0.0)
		}
	}
}

func TestPhaseReturnsCopy(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems)
	for i := 0; i < 4; i++ {
		s.Move(DirUp)
		tickUntilPlaying(t, s)
	}
	s.Move(DirUp)

	won := s.Phase().(*Won)
	won.Particles[0].X = -100
	won.Angle = 42

	again := s.Phase().(*Won)
	assert.NotEqual(t, -100.0, again.Particles[0].X)
	assert.Equal(t, 0.0, again.Angle)
}

func TestConfirm(t *testing.T) {
	s := fixedState(DefaultParams(), columnItems, C(0, 0), C(14, 14))
	s.hazardCount = 20

	assert.False(t, s.Confirm(), "confirm outside won must be a no-op")

	for i := 0; i < 4; i++ {
		s.Move(DirUp)
		tickUntilPlaying(t, s)
	}
	require.Equal(t, MoveWon, s.Move(DirUp))

	assert.True(t, s.Confirm())
	assert.Equal(t, KindPlaying, s.Phase().Kind())
	assert.Equal(t, 0, s.Collected().Len())
	assert.Equal(t, 0, s.Deaths())
	assert.Equal(t, 20, s.HazardCount())
	assert.Equal(t, C(7, 7), s.Player())
}

func TestMoveOffGridIsIdempotent(t *testing.T) {
	p := DefaultParams()
	p.Grid = Grid{Cols: 5, Rows: 5, Start: C(0, 0)}
	s := fixedState(p, []Coord{C(4, 4), C(3, 4), C(2, 4), C(1, 4), C(0, 4)})
	before := s.Visited().Slice()

	assert.Equal(t, MoveBlocked, s.Move(DirLeft))
	assert.Equal(t, DirLeft, s.Facing())
	assert.Equal(t, MoveBlocked, s.Move(DirLeft))
	assert.Equal(t, DirLeft, s.Facing())
	assert.Equal(t, MoveBlocked, s.Move(DirUp))

	assert.Equal(t, DirUp, s.Facing())
	assert.Equal(t, C(0, 0), s.Player())
	assert.Equal(t, before, s.Visited().Slice())
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  MoveOutcome
		expected string
	}{
		{MoveIgnored, "ignored"},
		{MoveBlocked, "blocked"},
		{MoveStepped, "stepped"},
		{MoveHazard, "hazard"},
		{MoveItem, "item"},
		{MoveWon, "won"},
		{MoveOutcome(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.outcome.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
