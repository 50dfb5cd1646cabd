package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardInside(t *testing.T) {
	b := Board{Width: 20, Height: 20}
	require.True(t, b.Inside(Point{X: 0, Y: 0}))
	require.True(t, b.Inside(Point{X: 19, Y: 19}))
	for _, p := range []Point{{X: -1, Y: 1}, {X: 20, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 20}} {
		require.False(t, b.Inside(p), "%v", p)
	}
}

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	b := Board{Width: 5, Height: 5}
	rng := rand.New(rand.NewSource(42))
	occupied := map[Point]bool{}
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}

	for i := 0; i < 100; i++ {
		p, err := b.PlaceFood(rng, occupied)
		require.NoError(t, err)
		require.False(t, occupied[p])
		require.Equal(t, 4, p.Y)
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	b := Board{Width: 30, Height: 30}
	occupied := map[Point]bool{}
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}
	delete(occupied, Point{X: 17, Y: 3})

	p, err := b.PlaceFood(rand.New(rand.NewSource(7)), occupied)
	require.NoError(t, err)
	require.Equal(t, Point{X: 17, Y: 3}, p)
}

func TestPlaceFoodFullBoard(t *testing.T) {
	b := Board{Width: 2, Height: 2}
	occupied := map[Point]bool{
		{X: 0, Y: 0}: true,
		{X: 0, Y: 1}: true,
		{X: 1, Y: 0}: true,
		{X: 1, Y: 1}: true,
		// off board cells do not count towards the board being full
		{X: -1, Y: 0}: true,
	}
	_, err := b.PlaceFood(rand.New(rand.NewSource(1)), occupied)
	require.Equal(t, ErrNoFreeCell, err)

	delete(occupied, Point{X: 1, Y: 1})
	p, err := b.PlaceFood(rand.New(rand.NewSource(1)), occupied)
	require.NoError(t, err)
	require.Equal(t, Point{X: 1, Y: 1}, p)
}
