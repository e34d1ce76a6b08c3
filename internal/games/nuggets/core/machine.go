package core

// MoveOutcome tells the caller what a move request did.
type MoveOutcome int

const (
	MoveIgnored MoveOutcome = iota // not in the playing phase
	MoveBlocked                    // off the grid, only facing changed
	MoveStepped                    // plain floor or an already-collected piece
	MoveHazard                     // fell into a pit, back at the start
	MoveItem                       // picked up a piece, more remain
	MoveWon                        // picked up the last piece
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveIgnored:
		return "ignored"
	case MoveBlocked:
		return "blocked"
	case MoveStepped:
		return "stepped"
	case MoveHazard:
		return "hazard"
	case MoveItem:
		return "item"
	case MoveWon:
		return "won"
	default:
		return "unknown"
	}
}

// Move handles a directional request. Outside the playing phase it does
// nothing. Facing always follows the request; a step off the grid changes
// nothing else.
func (s *State) Move(d Dir) MoveOutcome {
	if _, ok := s.phase.(Playing); !ok {
		return MoveIgnored
	}

	s.facing = d
	next := s.player.Step(d)
	if !s.params.Grid.InBounds(next) {
		return MoveBlocked
	}

	s.player = next
	s.visited.Put(next)

	if s.hazards.Has(next) {
		s.deaths++
		s.revealed.Put(next)
		s.player = s.params.Grid.Start
		s.visited.Put(s.player)
		s.phase = &HazardRecovery{
			Countdown: s.params.HazardRecovery,
			Duration:  s.params.HazardRecovery,
		}
		return MoveHazard
	}

	if s.IsItem(next) && !s.collected.Has(next) {
		s.collected.Put(next)
		if s.Won() {
			s.enterWon(next)
			return MoveWon
		}
		s.phase = &ItemFound{
			Countdown: s.params.ItemFound,
			Duration:  s.params.ItemFound,
			Origin:    next,
			Slot:      s.collected.Len() - 1,
		}
		return MoveItem
	}

	return MoveStepped
}

// Confirm starts a new map at the same difficulty when the run is won.
// It reports whether it did anything.
func (s *State) Confirm() bool {
	if _, ok := s.phase.(*Won); !ok {
		return false
	}
	s.Reset()
	return true
}

// Tick advances phase timers and the victory animation by one frame.
func (s *State) Tick() {
	switch p := s.phase.(type) {
	case *HazardRecovery:
		p.Countdown--
		if p.Countdown <= 0 {
			s.phase = Playing{}
		}
	case *ItemFound:
		p.Countdown--
		if p.Countdown <= 0 {
			s.phase = Playing{}
		}
	case *Won:
		vp := s.params.Victory
		p.Angle += vp.AngleStep
		p.Particles = stepParticles(p.Particles, vp.Gravity)
		p.RespawnCountdown--
		if p.RespawnCountdown <= 0 {
			cx, cy := s.centre()
			p.Particles = append(p.Particles, burst(s.rng, vp, cx, cy, vp.RespawnBatch)...)
			p.Particles = capParticles(p.Particles, vp.MaxParticles)
			p.RespawnCountdown = vp.RespawnInterval
		}
	}
}

func (s *State) enterWon(at Coord) {
	vp := s.params.Victory
	particles := burst(s.rng, vp, float64(at.X)+0.5, float64(at.Y)+0.5, vp.InitialBurst)
	s.phase = &Won{
		Angle:            0,
		Particles:        capParticles(particles, vp.MaxParticles),
		RespawnCountdown: 0,
	}
}

// centre returns the middle of the board in cell units.
func (s *State) centre() (float64, float64) {
	g := s.params.Grid
	return float64(g.Cols) / 2, float64(g.Rows) / 2
}
