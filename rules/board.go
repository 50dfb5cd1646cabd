package rules

import (
	"errors"
	"math/rand"
)

var (
	// ErrNoFreeCell is returned when food cannot be placed because every
	// cell on the board is occupied.
	ErrNoFreeCell = errors.New("rules: no unoccupied cell left for food")
	// ErrGridTooSmall is returned when the board cannot hold the starting
	// snakes plus one piece of food.
	ErrGridTooSmall = errors.New("rules: grid too small")
)

// DefaultWidth and DefaultHeight are the board dimensions used when none are
// configured.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

// Board is the coordinate space [0,Width) x [0,Height).
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Inside reports whether p lies on the board.
func (b Board) Inside(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells is the total number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// occupiedPoints returns the set of board cells held by any of the snakes.
func occupiedPoints(snakes []*Snake) map[Point]bool {
	occupied := map[Point]bool{}
	for _, s := range snakes {
		for _, p := range s.Body {
			occupied[p] = true
		}
	}
	return occupied
}

// PlaceFood picks a uniformly random cell not in occupied. Candidates are
// drawn by rejection sampling; once the attempt budget is spent the free
// cells are enumerated and one of those is picked instead. A full board
// yields ErrNoFreeCell.
func (b Board) PlaceFood(rng *rand.Rand, occupied map[Point]bool) (Point, error) {
	taken := 0
	for p := range occupied {
		if b.Inside(p) {
			taken++
		}
	}
	cells := b.Cells()
	if taken >= cells {
		return Point{}, ErrNoFreeCell
	}

	attempts := 4 * cells
	for i := 0; i < attempts; i++ {
		p := Point{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
		if !occupied[p] {
			return p, nil
		}
	}

	open := b.unoccupiedPoints(occupied)
	if len(open) == 0 {
		return Point{}, ErrNoFreeCell
	}
	return open[rng.Intn(len(open))], nil
}

func (b Board) unoccupiedPoints(occupied map[Point]bool) []Point {
	open := make([]Point, 0, b.Cells()-len(occupied))
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				open = append(open, p)
			}
		}
	}
	return open
}
