package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is an unordered set of grid cells. The zero value is an empty set
// ready to use.
type CellSet struct {
	set   mapset.Set[Coord]
	ready bool
}

// NewCellSet returns a set holding the given cells.
func NewCellSet(cells ...Coord) CellSet {
	s := CellSet{set: mapset.New[Coord](), ready: true}
	for _, c := range cells {
		s.set.Put(c)
	}
	return s
}

func (s *CellSet) init() {
	if !s.ready {
		s.set = mapset.New[Coord]()
		s.ready = true
	}
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Coord) bool {
	if !s.ready {
		return false
	}
	return s.set.Has(c)
}

// Put adds c to the set.
func (s *CellSet) Put(c Coord) {
	s.init()
	s.set.Put(c)
}

// Remove deletes c from the set.
func (s *CellSet) Remove(c Coord) {
	if s.ready {
		s.set.Remove(c)
	}
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	if !s.ready {
		return 0
	}
	return s.set.Size()
}

// Each calls fn for every cell in unspecified order.
func (s CellSet) Each(fn func(Coord)) {
	if s.ready {
		s.set.Each(fn)
	}
}

// Slice returns the cells sorted row-major, which keeps logs, snapshots and
// tests stable.
func (s CellSet) Slice() []Coord {
	out := make([]Coord, 0, s.Len())
	s.Each(func(c Coord) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	c := NewCellSet()
	s.Each(func(v Coord) { c.set.Put(v) })
	return c
}

// With returns a copy of the set with extra added.
func (s CellSet) With(extra Coord) CellSet {
	c := s.Clone()
	c.set.Put(extra)
	return c
}

// SubsetOf reports whether every cell of s is also in other.
func (s CellSet) SubsetOf(other CellSet) bool {
	ok := true
	s.Each(func(c Coord) {
		if !other.Has(c) {
			ok = false
		}
	})
	return ok
}
