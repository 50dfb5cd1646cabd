package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_Turn(t *testing.T) {
	tests := []struct {
		Current  Heading
		Request  Heading
		Accepted bool
	}{
		{HeadingRight, HeadingLeft, false},
		{HeadingLeft, HeadingRight, false},
		{HeadingUp, HeadingDown, false},
		{HeadingDown, HeadingUp, false},
		{HeadingRight, HeadingUp, true},
		{HeadingRight, HeadingDown, true},
		{HeadingRight, HeadingRight, true},
		{HeadingUp, HeadingLeft, true},
		{HeadingUp, Heading("sideways"), false},
	}

	for _, test := range tests {
		s := snakeOf(test.Current, Point{X: 5, Y: 5})
		require.Equal(t, test.Accepted, s.Turn(test.Request), "%s -> %s", test.Current, test.Request)
		if test.Accepted {
			require.Equal(t, test.Request, s.Pending)
		} else {
			require.Equal(t, test.Current, s.Pending)
		}
		require.Equal(t, test.Current, s.Heading)
	}
}

func TestSnake_TurnChecksCurrentNotPending(t *testing.T) {
	s := snakeOf(HeadingRight, Point{X: 5, Y: 5})
	require.True(t, s.Turn(HeadingUp))
	// Left reverses the current heading even though up is pending.
	require.False(t, s.Turn(HeadingLeft))
	require.Equal(t, HeadingUp, s.Pending)
}

func TestSnake_Advance(t *testing.T) {
	s := snakeOf(HeadingRight, Point{X: 5, Y: 5}, Point{X: 4, Y: 5})
	head := s.nextHead()
	require.Equal(t, Point{X: 6, Y: 5}, head)

	s.advance(head, false)
	require.Equal(t, []Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)

	s.advance(Point{X: 7, Y: 5}, true)
	require.Equal(t, []Point{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)
	require.Equal(t, Point{X: 5, Y: 5}, s.Tail())
}

func TestSnake_Clone(t *testing.T) {
	s := snakeOf(HeadingUp, Point{X: 1, Y: 1})
	s.Death = &Death{Turn: 3, Cause: DeathCauseWallCollision}
	c := s.Clone()
	c.Body[0] = Point{X: 9, Y: 9}
	c.Death.Turn = 4
	require.Equal(t, Point{X: 1, Y: 1}, s.Head())
	require.Equal(t, 3, s.Death.Turn)
}

func TestHeading(t *testing.T) {
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
		dx, dy := h.Delta()
		ox, oy := h.Opposite().Delta()
		require.Equal(t, -dx, ox)
		require.Equal(t, -dy, oy)
		parsed, err := ParseHeading(string(h))
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	}
	_, err := ParseHeading("north")
	require.Equal(t, ErrInvalidHeading, err)
}

func TestHeadingFromSwipe(t *testing.T) {
	tests := []struct {
		DX, DY   int
		Expected Heading
		OK       bool
	}{
		{30, 5, HeadingRight, true},
		{-30, 5, HeadingLeft, true},
		{5, 30, HeadingDown, true},
		{5, -30, HeadingUp, true},
		{10, 10, HeadingDown, true},
		{0, 0, "", false},
	}
	for _, test := range tests {
		h, ok := HeadingFromSwipe(test.DX, test.DY)
		require.Equal(t, test.OK, ok)
		require.Equal(t, test.Expected, h)
	}
}
