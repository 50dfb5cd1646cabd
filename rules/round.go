package rules

import (
	"errors"
	"math/rand"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ScoreIncrement is added to a player's score every time it eats.
const ScoreIncrement = 10

var (
	// ErrNotRunning is returned when an operation needs a running round.
	ErrNotRunning = errors.New("rules: round is not running")
	// ErrNotPaused is returned when resuming a round that is not paused.
	ErrNotPaused = errors.New("rules: round is not paused")
	// ErrInvalidPlayer is returned for a player index outside the mode.
	ErrInvalidPlayer = errors.New("rules: invalid player")
	// ErrRoundActive is returned when reconfiguring a running or paused round.
	ErrRoundActive = errors.New("rules: round is active")
)

// Round is one playthrough from start to terminal collision. A Round is not
// safe for concurrent use; callers serialise access to it.
type Round struct {
	ID         string
	Board      Board
	Mode       GameMode
	Difficulty Difficulty
	Turn       int
	Snakes     []*Snake
	Food       Point
	Scores     []int
	State      RoundState
	Outcome    Outcome

	rng *rand.Rand
}

// NewRound creates an idle round. Nothing is validated until Start.
func NewRound(cfg Config, rng *rand.Rand) *Round {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Round{
		Board:      Board{Width: cfg.Width, Height: cfg.Height},
		Mode:       cfg.Mode,
		Difficulty: cfg.Difficulty,
		State:      RoundStateIdle,
		rng:        rng,
	}
}

// Config returns the configuration the next Start will use.
func (r *Round) Config() Config {
	return Config{
		Width:      r.Board.Width,
		Height:     r.Board.Height,
		Mode:       r.Mode,
		Difficulty: r.Difficulty,
	}
}

// Configure replaces the board size, mode and difficulty used by the next
// Start. Active rounds can only be reconfigured through StartWith.
func (r *Round) Configure(cfg Config) error {
	if r.Active() {
		return ErrRoundActive
	}
	return r.configure(cfg)
}

func (r *Round) configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.Board = Board{Width: cfg.Width, Height: cfg.Height}
	r.Mode = cfg.Mode
	r.Difficulty = cfg.Difficulty
	return nil
}

// StartWith reconfigures the round and starts it. An invalid configuration
// leaves the round as it was.
func (r *Round) StartWith(cfg Config) error {
	if err := r.configure(cfg); err != nil {
		return err
	}
	return r.Start()
}

// Start moves the round from any state to running with fresh snakes, food
// and scores. Configuration errors are reported here and leave the round
// unchanged.
func (r *Round) Start() error {
	cfg := r.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	snakes, err := initialSnakes(cfg)
	if err != nil {
		return err
	}
	food, err := r.Board.PlaceFood(r.rng, occupiedPoints(snakes))
	if err != nil {
		return err
	}

	r.ID = uuid.NewV4().String()
	r.Turn = 0
	r.Snakes = snakes
	r.Food = food
	r.Scores = make([]int, len(snakes))
	r.State = RoundStateRunning
	r.Outcome = OutcomeNone

	log.WithFields(log.Fields{
		"RoundID":    r.ID,
		"Mode":       r.Mode,
		"Difficulty": r.Difficulty,
		"Food":       r.Food,
	}).Info("round started")
	return nil
}

// Pause stops ticks from advancing a running round.
func (r *Round) Pause() error {
	if r.State != RoundStateRunning {
		return ErrNotRunning
	}
	r.State = RoundStatePaused
	return nil
}

// Resume continues a paused round.
func (r *Round) Resume() error {
	if r.State != RoundStatePaused {
		return ErrNotPaused
	}
	r.State = RoundStateRunning
	return nil
}

// TogglePause flips between running and paused and reports whether the round
// is now paused.
func (r *Round) TogglePause() (bool, error) {
	switch r.State {
	case RoundStateRunning:
		return true, r.Pause()
	case RoundStatePaused:
		return false, r.Resume()
	}
	return false, ErrNotRunning
}

// SetHeading records the player's requested heading for the next tick. It
// returns false when the request was ignored, for example because it
// reverses the current heading.
func (r *Round) SetHeading(player int, h Heading) (bool, error) {
	if player < 0 || player >= r.Mode.Players() {
		return false, ErrInvalidPlayer
	}
	if r.State != RoundStateRunning && r.State != RoundStatePaused {
		return false, ErrNotRunning
	}
	if player >= len(r.Snakes) {
		return false, ErrInvalidPlayer
	}
	return r.Snakes[player].Turn(h), nil
}

// SetDifficulty changes the difficulty without touching snake state. It is
// allowed in every state and applies to the high score of the current round.
func (r *Round) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return ErrInvalidDifficulty
	}
	r.Difficulty = d
	return nil
}

// Active reports whether the round is running or paused.
func (r *Round) Active() bool {
	return r.State == RoundStateRunning || r.State == RoundStatePaused
}

// Score returns the score of a player, or zero for an unknown player.
func (r *Round) Score(player int) int {
	if player < 0 || player >= len(r.Scores) {
		return 0
	}
	return r.Scores[player]
}
