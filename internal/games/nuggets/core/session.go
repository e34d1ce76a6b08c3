package core

// NewGame generates a map with up to hazardCount pits and returns a fresh
// playthrough on it. rng is kept for later maps and victory effects.
func NewGame(p Params, hazardCount int, rng Rand) *State {
	s := &State{
		params:      p,
		hazardCount: hazardCount,
		rng:         rng,
	}
	s.Reset()
	return s
}

// Reset generates a new map at the session's hazard count and clears all
// progress. The State pointer stays valid.
func (s *State) Reset() {
	placed := Place(s.params.Grid, s.params.ItemCount, s.hazardCount, s.rng)

	s.player = s.params.Grid.Start
	s.facing = DirDown
	s.visited = NewCellSet(s.player)
	s.items = placed.Items
	s.collected = NewCellSet()
	s.hazards = placed.Hazards
	s.revealed = NewCellSet()
	s.deaths = 0
	s.phase = Playing{}
}
