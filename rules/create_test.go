package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialSnakes_SinglePlayer(t *testing.T) {
	snakes, err := initialSnakes(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, snakes, 1)
	require.Equal(t, []Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, snakes[0].Body)
	require.Equal(t, HeadingRight, snakes[0].Heading)
	require.Equal(t, HeadingRight, snakes[0].Pending)
}

func TestInitialSnakes_TwoPlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = GameModeTwoPlayer
	snakes, err := initialSnakes(cfg)
	require.NoError(t, err)
	require.Len(t, snakes, 2)
	require.Equal(t, []Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}, snakes[0].Body)
	require.Equal(t, HeadingRight, snakes[0].Heading)
	require.Equal(t, []Point{{X: 14, Y: 10}, {X: 15, Y: 10}, {X: 16, Y: 10}}, snakes[1].Body)
	require.Equal(t, HeadingLeft, snakes[1].Heading)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		Name string
		Edit func(*Config)
		Err  error
	}{
		{"Default", func(*Config) {}, nil},
		{"BadDifficulty", func(c *Config) { c.Difficulty = "nightmare" }, ErrInvalidDifficulty},
		{"BadMode", func(c *Config) { c.Mode = "battle-royale" }, ErrInvalidMode},
		{"ZeroWidth", func(c *Config) { c.Width = 0 }, ErrGridTooSmall},
		{"NarrowSingle", func(c *Config) { c.Width = 3 }, ErrGridTooSmall},
		{"SmallestSingle", func(c *Config) { c.Width, c.Height = 4, 1 }, nil},
		{"TooShortForBody", func(c *Config) { c.Width, c.Height = 3, 1 }, ErrGridTooSmall},
		{"NarrowTwoPlayer", func(c *Config) { c.Mode, c.Width = GameModeTwoPlayer, 7 }, ErrGridTooSmall},
		{"SmallestTwoPlayer", func(c *Config) { c.Mode, c.Width = GameModeTwoPlayer, 8 }, nil},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.Edit(&cfg)
			require.Equal(t, test.Err, cfg.Validate())
		})
	}
}
