package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nugget-hunt/internal/games/nuggets/core"
)

// checkPlacement verifies the map layout rules independently of the generator.
func checkPlacement(t *testing.T, g core.Grid, p core.Placement, items, maxHazards int) {
	t.Helper()

	require.Len(t, p.Items, items)
	assert.LessOrEqual(t, p.Hazards.Len(), maxHazards)

	seen := core.NewCellSet()
	for _, it := range p.Items {
		assert.True(t, g.InBounds(it), "item %v out of bounds", it)
		assert.NotEqual(t, g.Start, it, "item on start cell")
		assert.False(t, seen.Has(it), "duplicate item %v", it)
		assert.False(t, p.Hazards.Has(it), "item %v is also a hazard", it)
		seen.Put(it)
	}
	assert.False(t, p.Hazards.Has(g.Start), "hazard on start cell")
	p.Hazards.Each(func(c core.Coord) {
		assert.True(t, g.InBounds(c), "hazard %v out of bounds", c)
	})

	for _, it := range p.Items {
		assert.True(t, core.Reachable(g, g.Start, it, p.Hazards), "item %v unreachable", it)
	}
}

func TestPlaceRulesHoldAcrossSeeds(t *testing.T) {
	for _, hazards := range []int{0, 15, 20, 25} {
		for seed := int64(1); seed <= 60; seed++ {
			rng := rand.New(rand.NewSource(seed))
			p := core.Place(board, 5, hazards, rng)
			checkPlacement(t, board, p, 5, hazards)
		}
	}
}

func TestPlaceMediumExactOnClassicBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	p := core.Place(board, 5, 20, rng)

	checkPlacement(t, board, p, 5, 20)
	assert.Equal(t, 20, p.Hazards.Len(), "20 pits fit comfortably on 219 free cells")
}

func TestPlaceDeterministic(t *testing.T) {
	a := core.Place(board, 5, 25, rand.New(rand.NewSource(99)))
	b := core.Place(board, 5, 25, rand.New(rand.NewSource(99)))

	assert.Equal(t, a.Items, b.Items)
	assert.Equal(t, a.Hazards.Slice(), b.Hazards.Slice())
}

func TestPlaceUnderPlacesOnTinyGrid(t *testing.T) {
	tiny := core.Grid{Cols: 3, Rows: 3, Start: core.C(1, 1)}

	for seed := int64(1); seed <= 30; seed++ {
		p := core.Place(tiny, 5, 10, rand.New(rand.NewSource(seed)))
		checkPlacement(t, tiny, p, 5, 3)
	}
}

func TestPlaceDenseRequestNeverSealsItems(t *testing.T) {
	small := core.Grid{Cols: 6, Rows: 6, Start: core.C(0, 0)}

	for seed := int64(1); seed <= 30; seed++ {
		p := core.Place(small, 5, 1000, rand.New(rand.NewSource(seed)))
		checkPlacement(t, small, p, 5, 30)
	}
}
