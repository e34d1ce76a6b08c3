package nuggets

import (
	nc "github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Difficulty  string
	Seed        int64
	Player      nc.Coord
	Facing      nc.Dir
	Items       []nc.Coord
	Hazards     []nc.Coord
	Collected   int
	Revealed    int
	Visited     int
	Pitfalls    int
	Moves       int
	Phase       nc.PhaseKind
	Particles   int
	PausedSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Difficulty: string(g.preset)}
	}
	s := Snapshot{
		Tick:        g.ticks,
		Difficulty:  string(g.preset),
		Seed:        g.seed,
		Player:      g.state.Player(),
		Facing:      g.state.Facing(),
		Items:       g.state.Items(),
		Hazards:     g.state.Hazards().Slice(),
		Collected:   g.state.Collected().Len(),
		Revealed:    g.state.Revealed().Len(),
		Visited:     g.state.Visited().Len(),
		Pitfalls:    g.state.Deaths(),
		Moves:       g.moves,
		Phase:       g.state.Phase().Kind(),
		PausedSmall: g.layout.tooSmall,
	}
	if w, ok := g.state.Phase().(*nc.Won); ok {
		s.Particles = len(w.Particles)
	}
	return s
}
