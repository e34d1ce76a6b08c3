package core

// State is one playthrough. It is created by NewGame, reinitialised in place
// by Reset and only changed through Move, Confirm and Tick. Accessors return
// copies, so renderers can hold on to what they read.
type State struct {
	params      Params
	hazardCount int
	rng         Rand

	player    Coord
	facing    Dir
	visited   CellSet
	items     []Coord
	collected CellSet
	hazards   CellSet
	revealed  CellSet
	deaths    int
	phase     Phase
}

// Params returns the fixed session parameters.
func (s *State) Params() Params { return s.params }

// Grid returns the board description.
func (s *State) Grid() Grid { return s.params.Grid }

// HazardCount returns the number of hazards requested for every map of
// this session. The current map may hold fewer, see Hazards.
func (s *State) HazardCount() int { return s.hazardCount }

// Player returns the explorer's cell.
func (s *State) Player() Coord { return s.player }

// Facing returns the direction of the most recent move request.
func (s *State) Facing() Dir { return s.facing }

// Visited returns every cell the explorer has stood on this map.
func (s *State) Visited() CellSet { return s.visited.Clone() }

// Items returns the piece cells in placement order.
func (s *State) Items() []Coord { return append([]Coord(nil), s.items...) }

// Collected returns the pieces picked up so far.
func (s *State) Collected() CellSet { return s.collected.Clone() }

// Hazards returns every pit on the map, revealed or not.
func (s *State) Hazards() CellSet { return s.hazards.Clone() }

// Revealed returns the pits the explorer has fallen into.
func (s *State) Revealed() CellSet { return s.revealed.Clone() }

// Deaths returns the pit counter.
func (s *State) Deaths() int { return s.deaths }

// Phase returns a copy of the current phase.
func (s *State) Phase() Phase { return clonePhase(s.phase) }

// IsVisited reports whether c has been stood on this map.
func (s *State) IsVisited(c Coord) bool { return s.visited.Has(c) }

// IsCollected reports whether the piece on c has been picked up.
func (s *State) IsCollected(c Coord) bool { return s.collected.Has(c) }

// IsRevealed reports whether c is a pit the explorer has fallen into.
func (s *State) IsRevealed(c Coord) bool { return s.revealed.Has(c) }

// IsItem reports whether a piece was placed on c.
func (s *State) IsItem(c Coord) bool {
	for _, it := range s.items {
		if it == c {
			return true
		}
	}
	return false
}

// Won reports whether every piece has been collected.
func (s *State) Won() bool {
	return len(s.items) > 0 && s.collected.Len() == len(s.items)
}
