package core

// PhaseKind names a phase for snapshots and logs.
type PhaseKind string

const (
	KindPlaying        PhaseKind = "playing"
	KindHazardRecovery PhaseKind = "hazard_recovery"
	KindItemFound      PhaseKind = "item_found"
	KindWon            PhaseKind = "won"
)

// Phase is the current sub-state of a playthrough. The set of
// implementations is closed: Playing, *HazardRecovery, *ItemFound and *Won.
type Phase interface {
	Kind() PhaseKind
	isPhase()
}

// Playing accepts movement.
type Playing struct{}

func (Playing) Kind() PhaseKind { return KindPlaying }
func (Playing) isPhase()        {}

// HazardRecovery follows a pit fall. Input is ignored until the countdown
// reaches zero.
type HazardRecovery struct {
	Countdown int
	Duration  int
}

func (*HazardRecovery) Kind() PhaseKind { return KindHazardRecovery }
func (*HazardRecovery) isPhase()        {}

// ItemFound follows picking up a piece that was not the last one.
// Origin is the cell it was found on; Slot is its 0-based position in the
// collection order, which a renderer uses as the fly-to target.
type ItemFound struct {
	Countdown int
	Duration  int
	Origin    Coord
	Slot      int
}

func (*ItemFound) Kind() PhaseKind { return KindItemFound }
func (*ItemFound) isPhase()        {}

// Won holds the victory animation: a rotation angle, the live particles and
// the ticks left until the next particle batch.
type Won struct {
	Angle            float64
	Particles        []Particle
	RespawnCountdown int
}

func (*Won) Kind() PhaseKind { return KindWon }
func (*Won) isPhase()        {}

// clonePhase returns a copy the caller may keep without aliasing state.
func clonePhase(p Phase) Phase {
	switch v := p.(type) {
	case *HazardRecovery:
		cp := *v
		return &cp
	case *ItemFound:
		cp := *v
		return &cp
	case *Won:
		cp := *v
		cp.Particles = append([]Particle(nil), v.Particles...)
		return &cp
	default:
		return Playing{}
	}
}
