package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var board = Board{Width: 20, Height: 20}

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		updates := checkForDeath(board, 3, []*Snake{
			{Body: []Point{p}},
		})
		require.Len(t, updates, 1)
		require.Equal(t, DeathCauseWallCollision, updates[0].Death.Cause)
		require.Equal(t, 3, updates[0].Death.Turn)
	}
}

func TestDeathCauseSnakeCollision(t *testing.T) {
	updates := checkForDeath(board, 3, []*Snake{
		{Body: []Point{{X: 5, Y: 5}}},
		{Body: []Point{{X: 6, Y: 5}, {X: 5, Y: 5}}},
	})
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseSnakeCollision, updates[0].Death.Cause)
	require.Equal(t, 0, updates[0].Player)
}

func TestDeathCauseHeadToHeadCollision(t *testing.T) {
	updates := checkForDeath(board, 3, []*Snake{
		{Body: []Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}},
		{Body: []Point{{X: 6, Y: 5}, {X: 7, Y: 5}}},
	})
	require.Len(t, updates, 2)
	require.Equal(t, DeathCauseHeadToHeadCollision, updates[0].Death.Cause)
	require.Equal(t, DeathCauseHeadToHeadCollision, updates[1].Death.Cause)
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	updates := checkForDeath(board, 3, []*Snake{
		{
			Body: []Point{
				{X: 4, Y: 4},
				{X: 3, Y: 4},
				{X: 3, Y: 3},
				{X: 4, Y: 3},
				{X: 4, Y: 4},
			},
		},
	})
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseSnakeSelfCollision, updates[0].Death.Cause)
}

func TestDeathNone(t *testing.T) {
	updates := checkForDeath(board, 3, []*Snake{
		{Body: []Point{{X: 4, Y: 4}, {X: 3, Y: 4}}},
		{Body: []Point{{X: 10, Y: 4}, {X: 11, Y: 4}}},
	})
	require.Empty(t, updates)
}
