package core

// Reachable reports whether goal can be reached from start by 4-connected
// steps that stay on the grid and avoid blocked cells.
//
// The goal is accepted as soon as it is seen as a neighbour, before the
// bounds and blocked checks, so a goal cell is never blocked from itself.
func Reachable(g Grid, start, goal Coord, blocked CellSet) bool {
	if start == goal {
		return true
	}

	visited := NewCellSet(start)
	queue := []Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range Dirs {
			nb := current.Step(d)
			if nb == goal {
				return true
			}
			if !g.InBounds(nb) || blocked.Has(nb) || visited.Has(nb) {
				continue
			}
			visited.Put(nb)
			queue = append(queue, nb)
		}
	}
	return false
}

// AllReachable reports whether every goal is reachable from start.
func AllReachable(g Grid, start Coord, goals []Coord, blocked CellSet) bool {
	for _, goal := range goals {
		if !Reachable(g, start, goal, blocked) {
			return false
		}
	}
	return true
}
