package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// runningRound returns a started round with the snakes and food replaced.
func runningRound(t *testing.T, mode GameMode, food Point, snakes ...*Snake) *Round {
	cfg := DefaultConfig()
	cfg.Mode = mode
	r := NewRound(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, r.Start())
	r.Snakes = snakes
	r.Food = food
	return r
}

func snakeOf(heading Heading, body ...Point) *Snake {
	return &Snake{Body: body, Heading: heading, Pending: heading}
}
