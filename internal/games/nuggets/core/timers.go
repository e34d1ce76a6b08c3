package core

// Progress returns how far the recovery has run, from 0 at the fall to 1
// when control returns.
func (h *HazardRecovery) Progress() float64 {
	return progress(h.Countdown, h.Duration)
}

// Progress returns how far the found-piece sequence has run, 0 to 1.
func (f *ItemFound) Progress() float64 {
	return progress(f.Countdown, f.Duration)
}

// Elapsed returns the number of ticks since the piece was found.
func (f *ItemFound) Elapsed() int {
	return f.Duration - f.Countdown
}

// FlyProgress returns linear progress through the first flyTicks of the
// sequence, clamped to [0, 1]. Renderers ease it to move the piece from
// its cell to its HUD slot.
func (f *ItemFound) FlyProgress(flyTicks int) float64 {
	if flyTicks <= 0 {
		return 1
	}
	return clamp01(float64(f.Elapsed()) / float64(flyTicks))
}

// EaseOutCubic maps t in [0, 1] onto a curve that starts fast and settles.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func progress(countdown, duration int) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp01(1 - float64(countdown)/float64(duration))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
