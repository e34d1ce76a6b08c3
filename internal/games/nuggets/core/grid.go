package core

// Grid describes the fixed board: its dimensions and the start cell every
// run (and every pit fall) returns the explorer to.
type Grid struct {
	Cols  int
	Rows  int
	Start Coord
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Coord {
	cells := make([]Coord, 0, g.Cols*g.Rows)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			cells = append(cells, C(x, y))
		}
	}
	return cells
}

// Size returns the number of cells on the grid.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}
