package core

import "math"

// ParticleTints is the number of distinct tints a particle can carry.
const ParticleTints = 5

// Particle is one spark of the victory effect.
type Particle struct {
	X, Y   float64 // grid-cell units
	VX, VY float64
	Life   float64 // 1 when spawned, removed at or below 0
	Decay  float64
	Size   int // 2..5, renderers pick a glyph by it
	Tint   int // 0..ParticleTints-1
}

// burst returns n particles flying out of (x, y) in random directions.
func burst(rng Rand, vp VictoryParams, x, y float64, n int) []Particle {
	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := between(rng, vp.MinSpeed, vp.MaxSpeed)
		out = append(out, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Decay: between(rng, vp.MinDecay, vp.MaxDecay),
			Size:  2 + rng.Intn(4),
			Tint:  rng.Intn(ParticleTints),
		})
	}
	return out
}

// stepParticles advances every particle one tick and drops the dead ones.
// The input slice is reused.
func stepParticles(ps []Particle, gravity float64) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life -= p.Decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// capParticles drops the oldest particles beyond max.
func capParticles(ps []Particle, max int) []Particle {
	if max <= 0 || len(ps) <= max {
		return ps
	}
	return append(ps[:0], ps[len(ps)-max:]...)
}

func between(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
