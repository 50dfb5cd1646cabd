package rules

import "errors"

// GameMode represents the number of snakes in a round
type GameMode string

const (
	// GameModeSinglePlayer runs one snake until it collides
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeTwoPlayer runs two snakes until either of them collides
	GameModeTwoPlayer GameMode = "two-player"
)

// ErrInvalidMode is returned for an unknown game mode.
var ErrInvalidMode = errors.New("rules: invalid game mode")

const startLength = 3

// Players returns the number of snakes in the mode.
func (m GameMode) Players() int {
	if m == GameModeTwoPlayer {
		return 2
	}
	return 1
}

// Valid reports whether m is a known mode.
func (m GameMode) Valid() bool {
	return m == GameModeSinglePlayer || m == GameModeTwoPlayer
}

// Config is everything needed to start a round.
type Config struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Mode       GameMode   `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
}

// DefaultConfig is a 20x20 single player round at medium difficulty.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Mode:       GameModeSinglePlayer,
		Difficulty: DefaultDifficulty,
	}
}

// Validate checks the configuration, including that the starting snakes fit
// on the board with room left for food.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return ErrInvalidMode
	}
	if !c.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrGridTooSmall
	}
	_, err := initialSnakes(c)
	return err
}

// initialSnakes builds the starting snakes for the mode. A single snake
// starts centred heading right. Two snakes start a quarter in from either
// side facing each other.
func initialSnakes(c Config) ([]*Snake, error) {
	board := Board{Width: c.Width, Height: c.Height}
	midY := c.Height / 2

	var snakes []*Snake
	switch c.Mode {
	case GameModeTwoPlayer:
		snakes = []*Snake{
			newSnake(Point{X: c.Width / 4, Y: midY}, HeadingRight, startLength),
			newSnake(Point{X: c.Width - 1 - c.Width/4, Y: midY}, HeadingLeft, startLength),
		}
	default:
		snakes = []*Snake{
			newSnake(Point{X: c.Width / 2, Y: midY}, HeadingRight, startLength),
		}
	}

	occupied := map[Point]bool{}
	for _, s := range snakes {
		for _, p := range s.Body {
			if !board.Inside(p) || occupied[p] {
				return nil, ErrGridTooSmall
			}
			occupied[p] = true
		}
	}
	if len(occupied) >= board.Cells() {
		return nil, ErrGridTooSmall
	}
	return snakes, nil
}
