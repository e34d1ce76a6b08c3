package core

// Rand is the randomness the map generator and the victory effects need.
// *math/rand.Rand satisfies it; tests pass a seeded one.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Placement is the outcome of one map generation.
type Placement struct {
	Items   []Coord
	Hazards CellSet
}

// Place chooses itemCount item cells and up to hazardCount hazard cells.
//
// Items are drawn from a shuffled list of all non-start cells, keeping those
// reachable from the start. Hazards are then drawn from the remaining cells
// in a fresh shuffle; a candidate is kept only if every item stays reachable
// with it added to the hazard set. When candidates run out first, fewer
// hazards than requested are placed.
func Place(g Grid, itemCount, hazardCount int, rng Rand) Placement {
	candidates := make([]Coord, 0, g.Size())
	for _, c := range g.Cells() {
		if c != g.Start {
			candidates = append(candidates, c)
		}
	}
	shuffle(rng, candidates)

	empty := NewCellSet()
	items := make([]Coord, 0, itemCount)
	taken := NewCellSet(g.Start)
	for _, c := range candidates {
		if len(items) >= itemCount {
			break
		}
		if Reachable(g, g.Start, c, empty) {
			items = append(items, c)
			taken.Put(c)
		}
	}

	remaining := make([]Coord, 0, len(candidates))
	for _, c := range g.Cells() {
		if !taken.Has(c) {
			remaining = append(remaining, c)
		}
	}
	shuffle(rng, remaining)

	hazards := NewCellSet()
	for _, c := range remaining {
		if hazards.Len() >= hazardCount {
			break
		}
		if AllReachable(g, g.Start, items, hazards.With(c)) {
			hazards.Put(c)
		}
	}

	return Placement{Items: items, Hazards: hazards}
}

func shuffle(rng Rand, cells []Coord) {
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
}
